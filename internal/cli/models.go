// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MeruvaPeddababu/chatbotApplication/internal/model"
)

// HandleModels implements "chatbot models": list the catalog.
func HandleModels(args Args) int {
	if args.JSON {
		out, err := json.MarshalIndent(model.Catalog, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	def := model.DefaultModelID()
	for _, m := range model.Catalog {
		marker := " "
		if m.ID == def {
			marker = "*"
		}
		fmt.Printf("%s %-40s %-18s %s\n", marker, m.ID, m.Name, m.Description)
	}
	fmt.Println("\n* default model")
	return 0
}
