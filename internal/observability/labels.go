package observability

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// UnmatchedRoute labels requests that no endpoint route claimed.
const UnmatchedRoute = "unmatched"

// RouteLabel returns the registered template of the route that handled c, so
// label cardinality stays bounded by the route table. Call it after c.Next.
// Requests that only passed global middleware report UnmatchedRoute.
func RouteLabel(c *fiber.Ctx) string {
	route := c.Route()
	if route == nil || route.Path == "" || route.Method == "USE" {
		return UnmatchedRoute
	}
	return utils.CopyString(route.Path)
}

// MethodLabel copies the request method out of fasthttp's reused buffer.
func MethodLabel(c *fiber.Ctx) string {
	return utils.CopyString(c.Method())
}
