// Package providers registers every built-in judgment provider with the core
// factory. Import it for side effects from the service entrypoint.
package providers

import (
	_ "github.com/factlens/factscore/src/ai/gemini"
	_ "github.com/factlens/factscore/src/ai/openai"
)
