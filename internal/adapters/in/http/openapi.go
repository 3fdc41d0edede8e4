package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"repairshop/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

var loadOpenAPI = sync.OnceValues(func() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	swag.Register(swag.Name, swaggerDoc(raw))
	return doc, nil
})

// OpenAPI returns the document describing the /api routes. It is parsed and
// validated once per process.
func OpenAPI() (*openapi3.T, error) {
	return loadOpenAPI()
}

// swaggerDoc serves the document to the swagger UI.
type swaggerDoc []byte

func (d swaggerDoc) ReadDoc() string { return string(d) }

// RequestValidator rejects requests whose parameters or body do not match
// doc before they reach a handler. Requests for paths the document does not
// describe pass through untouched.
func (s *Server) RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{AuthenticationFunc: openapi3filter.NoopAuthenticationFunc}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, params, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: params,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause(invalidPart(err), err))
			}
			return next(ctx)
		}
	}, nil
}

// invalidPart names the parameter that failed validation, or "body".
func invalidPart(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return reqErr.Parameter.Name
	}
	return "body"
}
