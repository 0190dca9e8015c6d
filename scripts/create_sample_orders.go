package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
)

// Posts a handful of sample orders to a running server so the list and
// filter endpoints have something to show during manual testing.

type order struct {
	CustomerName  string   `json:"customerName"`
	SizeID        string   `json:"sizeId"`
	IngredientIDs []string `json:"ingredientIds"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of a running pizza-builder-api")
	flag.Parse()

	samples := []order{
		{CustomerName: "Alice", SizeID: "md", IngredientIDs: []string{"cheese", "pepperoni", "olive"}},
		{CustomerName: "Bob", SizeID: "lg", IngredientIDs: []string{"cheese", "bacon", "onion"}},
		{CustomerName: "Carol", SizeID: "sm", IngredientIDs: []string{"cheese", "basil"}},
		{CustomerName: "Dave", SizeID: "lg", IngredientIDs: []string{"pepperoni", "mushroom", "olive", "onion"}},
	}

	for _, sample := range samples {
		body, err := json.Marshal(sample)
		if err != nil {
			log.Fatalf("marshal %s: %v", sample.CustomerName, err)
		}

		resp, err := http.Post(*baseURL+"/pizzas", "application/json", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("POST /pizzas for %s: %v", sample.CustomerName, err)
		}

		var created map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			log.Fatalf("decode response for %s: %v", sample.CustomerName, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			log.Fatalf("unexpected status %d for %s: %v", resp.StatusCode, sample.CustomerName, created)
		}
		fmt.Printf("created order %v for %s (finalPrice %v)\n", created["id"], sample.CustomerName, created["finalPrice"])
	}
}
