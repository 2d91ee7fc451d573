package trackman

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("lib/scrapers/trackman")
