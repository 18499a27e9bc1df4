package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"courierledger/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// requestValidator checks requests against the OpenAPI document before the
// handlers run. Routes the document does not describe pass through.
func requestValidator(spec *openapi3.T) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, ok := findRoute(spec, c)
			if !ok {
				return next(c)
			}

			params := make(map[string]string, len(c.ParamNames()))
			for i, name := range c.ParamNames() {
				params[name] = c.ParamValues()[i]
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: params,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return badRequest(c, validationMessage(err))
			}
			return next(c)
		}
	}
}

// findRoute resolves the operation from the route echo already matched, so
// static segments such as /earnings/top win over /earnings/{id} the same way
// they do in the router.
func findRoute(spec *openapi3.T, c echo.Context) (*routers.Route, bool) {
	template := openAPIPath(c.Path())
	item := spec.Paths.Value(template)
	if item == nil {
		return nil, false
	}
	method := c.Request().Method
	operation := item.GetOperation(method)
	if operation == nil {
		return nil, false
	}
	return &routers.Route{
		Spec:      spec,
		Path:      template,
		PathItem:  item,
		Method:    method,
		Operation: operation,
	}, true
}

// openAPIPath turns /offers/:id into /offers/{id}.
func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

// validationMessage keeps the first line; body errors append a schema dump.
func validationMessage(err error) string {
	message, _, _ := strings.Cut(err.Error(), "\n")
	return message
}

type openAPIDoc string

func (d openAPIDoc) ReadDoc() string { return string(d) }

var registerDoc sync.Once

// registerSwaggerDoc publishes the document for the /swagger UI. swag keeps a
// process-wide registry, so only the first server registers.
func registerSwaggerDoc(spec *openapi3.T) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("marshal OpenAPI document: %w", err)
	}
	registerDoc.Do(func() {
		swag.Register(swag.Name, openAPIDoc(raw))
	})
	return nil
}

// loadSpec returns the embedded document with servers cleared so request
// paths match the document paths directly.
func loadSpec() (*openapi3.T, error) {
	spec, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load OpenAPI document: %w", err)
	}
	spec.Servers = nil
	return spec, nil
}

var _ servers.ServerInterface = (*Server)(nil)

func docRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
