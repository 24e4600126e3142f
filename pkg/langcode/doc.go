// Package langcode normalizes user interface language settings to the short
// BCP 47 base codes the console stores and renders with. It is a stateless
// helper shared by the session store and the request pipeline.
package langcode
