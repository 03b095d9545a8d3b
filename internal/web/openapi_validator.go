package web

import (
	"net/http"
	"os"

	"github.com/celsinho/rental-hub/internal/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator enforces the OpenAPI document against incoming
// requests. Enforcement is a deployment choice: it only runs when
// VALIDATE_REQUESTS=true, otherwise the middleware is a pass-through and
// the schema stays documentation.
func OpenapiValidator() gin.HandlerFunc {
	passThrough := func(c *gin.Context) {}

	if os.Getenv("VALIDATE_REQUESTS") != "true" {
		return passThrough
	}

	location := os.Getenv("OPENAPI_LOCATION")
	if location == "" {
		location = "./api/openapi.json"
	}

	loader := openapi3.NewLoader()
	document, err := loader.LoadFromFile(location)
	if err != nil {
		return passThrough
	}

	router, err := gorillamux.NewRouter(document)
	if err != nil {
		return passThrough
	}

	return validateAgainst(router)
}

func validateAgainst(router routers.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			// Routes outside the document are not validated.
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		err = openapi3filter.ValidateRequest(c.Request.Context(), input)
		if err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Request validation failed", err)
			c.Abort()
		}
	}
}
