package mockserver

import (
	"github.com/go-chi/chi/v5"
)

// Mount attaches the mock provider's Chat Completions and Responses dialect
// endpoints to r under the given prefix, e.g. Mount(r, "/v1", scenario, opts)
// serves POST /v1/chat/completions and POST /v1/responses.
func Mount(r chi.Router, prefix string, scenario *Scenario, opts Options) {
	r.Post(prefix+"/chat/completions", NewChatHandler(scenario, opts).ServeHTTP)
	r.Post(prefix+"/responses", NewResponsesHandler(scenario, opts).ServeHTTP)
}
