package main

import (
	"fmt"

	"github.com/smallsizeleague/sslmcp"
)

// Run executes the serve command on the selected transport.
func (c *ServeCmd) Run(deps *Dependencies) error {
	var err error
	switch c.Transport {
	case "http":
		err = deps.Server.RunHTTP(deps.Ctx, c.Addr)
	default:
		err = deps.Server.Run(deps.Ctx)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sslmcp.ErrorMessage(err))
		return err
	}
	return nil
}
