package app

import (
	transformHTTP "github.com/winwin/textproc/internal/transform/http"
	transformService "github.com/winwin/textproc/internal/transform/service"
)

// Transformer returns the text transformation service.
func (c *Container) Transformer() transformService.Transformer {
	c.transformerInit.Do(func() {
		c.transformer = transformService.NewTransformer()
	})
	return c.transformer
}

// TransformHandler returns the transform HTTP handler.
func (c *Container) TransformHandler() *transformHTTP.TransformHandler {
	c.transformHandlerInit.Do(func() {
		c.transformHandler = transformHTTP.NewTransformHandler(c.Transformer(), c.Logger())
	})
	return c.transformHandler
}
