package catalog

import "testing"

func TestCatalogSizes(t *testing.T) {
	cat := New()

	sizes := cat.Sizes()
	if len(sizes) == 0 {
		t.Fatal("expected at least one size")
	}
	if sizes[0].ID != "sm" || sizes[0].Name != "Small" {
		t.Errorf("expected sm/Small first, got %s/%s", sizes[0].ID, sizes[0].Name)
	}

	for _, id := range []string{"sm", "md", "lg"} {
		size, ok := cat.FindSize(id)
		if !ok {
			t.Fatalf("expected size %s in catalog", id)
		}
		if size.BasePrice < 0 {
			t.Errorf("size %s has negative base price %f", id, size.BasePrice)
		}
	}
}

func TestCatalogIngredients(t *testing.T) {
	cat := New()

	if len(cat.Ingredients()) == 0 {
		t.Fatal("expected at least one ingredient")
	}

	for _, id := range []string{"cheese", "pepperoni", "olive"} {
		ingredient, ok := cat.FindIngredient(id)
		if !ok {
			t.Fatalf("expected ingredient %s in catalog", id)
		}
		if ingredient.ExtraPrice < 0 {
			t.Errorf("ingredient %s has negative extra price %f", id, ingredient.ExtraPrice)
		}
	}
}

func TestCatalogLookupIsCaseSensitive(t *testing.T) {
	cat := New()

	if _, ok := cat.FindSize("SM"); ok {
		t.Error("size lookup should be case-sensitive")
	}
	if _, ok := cat.FindIngredient("Cheese"); ok {
		t.Error("ingredient lookup should be case-sensitive")
	}
}

func TestCatalogUnknownIdentifiers(t *testing.T) {
	cat := New()

	if _, ok := cat.FindSize("xx"); ok {
		t.Error("expected no match for unknown size")
	}
	if _, ok := cat.FindIngredient("glitter"); ok {
		t.Error("expected no match for unknown ingredient")
	}
}
