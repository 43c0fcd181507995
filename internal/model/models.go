// Copyright (c) 2025 Meruva Peddababu
// SPDX-License-Identifier: MIT

package model

// ModelInfo describes one selectable completion model.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Provider    string `json:"provider"`
}

// Catalog is the set of OpenRouter free-tier models offered by the app.
// Order matters: the first entry is the default model.
var Catalog = []ModelInfo{
	{
		ID:          "deepseek/deepseek-chat-v3-0324:free",
		Name:        "DeepSeek Chat v3",
		Description: "Advanced conversational AI model",
		Color:       "blue",
		Provider:    "DeepSeek",
	},
	{
		ID:          "qwen/qwen3-coder:free",
		Name:        "Qwen3 Coder",
		Description: "Specialized coding assistant",
		Color:       "green",
		Provider:    "Qwen",
	},
	{
		ID:          "z-ai/glm-4.5-air:free",
		Name:        "GLM-4.5 Air",
		Description: "Lightweight general purpose model",
		Color:       "purple",
		Provider:    "Z-AI",
	},
	{
		ID:          "deepseek/deepseek-r1-0528:free",
		Name:        "DeepSeek R1",
		Description: "Advanced reasoning model",
		Color:       "red",
		Provider:    "DeepSeek",
	},
}

// DefaultModelID is the model used when the user has not picked one.
func DefaultModelID() string {
	return Catalog[0].ID
}

// LookupModel finds a catalog entry by ID. The second return is false
// when the ID is not in the catalog.
func LookupModel(id string) (ModelInfo, bool) {
	for _, m := range Catalog {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}
