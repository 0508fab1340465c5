// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package openai provides dish extraction using OpenAI-compatible APIs.
//
// This package implements the ai.DishExtractor interface using the
// langchaingo library to communicate with OpenAI or OpenAI-compatible
// services (such as Ollama, LocalAI, or vLLM).
//
// # Usage
//
//	config := ai.DefaultConfig()
//	// Or customize:
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"), // /v1 added automatically
//	    ai.WithModel("qwen2.5:3b"),
//	)
//
//	extractor, err := openai.NewDishExtractor(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := extractor.ExtractDishes(ctx, ai.Query{
//	    Text:        "traditional street food in Bangkok",
//	    Origin:      "Seattle",
//	    Destination: "Bangkok",
//	    Tier:        1,
//	})
//
// Responses are requested in JSON mode at temperature 0. Malformed
// responses are repaired and re-asked a bounded number of times before
// the extractor gives up with ai.ErrMalformedResponse.
package openai
