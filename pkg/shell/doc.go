// Package shell renders the navigation shell shared by every page of the visa
// management UI: a header with the brand, breadcrumb, login link and the nav
// list, and a footer with the version and copyright lines.
//
// Components implement templ.Component, so they compose with templ views and
// with handler.Templ:
//
//	page := shell.Page(shell.Options{Active: "employees"}, content)
//	err := page.Render(ctx, w)
//
// Icons are lucide markers (<i data-lucide="...">); each block is followed by a
// createIcons() call so icons appear once the markup is in the document.
//
// Headline and subtitle may carry inline markup such as <b> or <small>; anything
// else is stripped. Nav labels and fixed strings are looked up under nav.* and
// shell.* in the optional translator, with the built-in Japanese text as fallback.
package shell
