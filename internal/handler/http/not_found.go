// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/service"
)

// notFound answers unknown paths with a JSON 404.
//
// It is also registered as the router's MethodNotAllowed handler: chi would
// answer a known path requested with an unregistered method with 405, which
// reveals that the path exists. Both cases get the same 404 here.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, fmt.Errorf("%w: %s %s", service.ErrNotFound, r.Method, r.URL.Path))
}
