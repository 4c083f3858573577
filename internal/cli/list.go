package cli

import "fmt"

type ListCmd struct{}

func (c *ListCmd) Run(app *Context) error {
	for i, t := range app.Tests {
		fmt.Printf("%4d %s\n", i, t.DisplayName())
	}
	return nil
}
