// Package plugin is the catalog of utility generators.
//
// # Overview
//
// Each plugin turns a slice of the theme into utility registrations. A
// registration is one of two rule kinds:
//
//   - [TemplatedRule]: a prefix, a scale and a template. One utility is
//     produced per scale key, for example prefix "m" with key "4" yields
//     the class "m-4" with the template's declarations for "1rem".
//   - [StaticRuleTable]: fixed selector tables such as
//     ".hidden { display: none }". Several tables merge left to right.
//
// Plugins see the theme only through [API], which offers scale lookup, the
// custom utilities of the theme and scale negation.
//
// # Catalog
//
// [Lookup] resolves a plugin by name and fails with PLUGIN_NOT_FOUND for
// names the catalog does not know. [Names] returns the default enumeration
// order and [Defaults] the matching specs, including the overrides the
// built-in scales need.
//
// Color plugins (textColor, backgroundColor, borderColor) emit the color as
// rgba with an opacity variable as its alpha channel:
//
//	.text-neutrals-l40 {
//	  --tw-text-opacity: 1;
//	  color: rgba(121, 134, 148, var(--tw-text-opacity));
//	}
//
// Expanding rules into classnames is the job of package index.
package plugin
