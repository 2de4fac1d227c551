package middleware

import (
	"prolink/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing opens a span per request and records handler errors on it.
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, span := observability.StartSpan(c.UserContext(), c.Method()+" "+c.Path(),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", c.Method()),
				attribute.String("http.target", c.Path()),
			),
		)
		defer span.End()

		c.SetUserContext(ctx)
		err := c.Next()

		// The route pattern is only known after matching.
		if route := c.Route(); route != nil {
			span.SetName(c.Method() + " " + route.Path)
		}
		span.SetAttributes(attribute.Int("http.status_code", c.Response().StatusCode()))
		if err != nil {
			observability.RecordError(ctx, err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}
