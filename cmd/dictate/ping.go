package main

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type PingCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *PingCmd) Run(app *Globals) error {
	remote, err := app.Client()
	if err != nil {
		return err
	}
	if err := remote.Ping(app.ctx); err != nil {
		return err
	}
	fmt.Println("OK")
	return nil
}
