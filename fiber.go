package accounts

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-print"
)

// LocalsAccountID is the fiber locals key holding the authorized account id.
const LocalsAccountID = "accountId"

// RouterOptions tune the transport adapters.
type RouterOptions struct {
	Debug  bool
	Logger Logger
}

func (o RouterOptions) logger() Logger {
	if o.Logger == nil {
		return defLogger{}
	}
	return o.Logger
}

// AdaptRoute converts a wire request into the pipeline envelope, invokes
// the controller, and writes the resulting envelope back.
func AdaptRoute(controller Controller, opts ...RouterOptions) fiber.Handler {
	var o RouterOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	return func(c *fiber.Ctx) error {
		req := Request{
			Body:    map[string]any{},
			Headers: map[string]string{},
		}

		if body := c.Body(); len(body) > 0 {
			if err := json.Unmarshal(body, &req.Body); err != nil {
				o.logger().Warn("route adapter failed to parse body", "error", err)
				return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: "invalid request body"})
			}
		}

		for key, values := range c.GetReqHeaders() {
			if len(values) > 0 {
				req.Headers[key] = values[0]
			}
		}

		// the authorization middleware has already resolved the caller
		if id, ok := c.Locals(LocalsAccountID).(string); ok && id != "" {
			req.Body[LocalsAccountID] = id
		}

		res := controller.Handle(c.UserContext(), req)

		if o.Debug {
			o.logger().Debug("route adapter response", "envelope", print.MaybePrettyJSON(res))
		}

		if res.StatusCode == fiber.StatusNoContent {
			return c.SendStatus(res.StatusCode)
		}

		return c.Status(res.StatusCode).JSON(res.Body)
	}
}

// AdaptMiddleware runs a controller-shaped gate before the route handler.
// A 200 envelope stores the account id in locals and continues the chain;
// anything else terminates the request with the gate's envelope.
func AdaptMiddleware(gate Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := Request{Headers: map[string]string{}}
		for key, values := range c.GetReqHeaders() {
			if len(values) > 0 {
				req.Headers[key] = values[0]
			}
		}

		res := gate.Handle(c.UserContext(), req)
		if res.StatusCode != fiber.StatusOK {
			return c.Status(res.StatusCode).JSON(res.Body)
		}

		if body, ok := res.Body.(AccountIDBody); ok {
			c.Locals(LocalsAccountID, body.AccountID)
		}

		return c.Next()
	}
}

// RegisterRoutes binds the account pipeline to a fiber app: open login and
// signup endpoints, a token-gated identity probe, and an admin-only sample
// route demonstrating role enforcement.
func RegisterRoutes(app *fiber.App, cfg Config, repo RepositoryManager, opts ...RouterOptions) {
	app.Post("/login", AdaptRoute(MakeLoginController(cfg, repo), opts...))
	app.Post("/signup", AdaptRoute(MakeSignUpController(cfg, repo), opts...))

	app.Get("/me",
		AdaptMiddleware(MakeAuthMiddleware(repo, "")),
		func(c *fiber.Ctx) error {
			id, _ := c.Locals(LocalsAccountID).(string)
			return c.JSON(AccountIDBody{AccountID: id})
		})

	app.Get("/admin/audit",
		AdaptMiddleware(MakeAuthMiddleware(repo, RoleAdmin)),
		func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusNoContent)
		})
}
