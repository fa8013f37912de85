// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public contracts for the staticring library: the Ring and Drainable
// interfaces every engine variant satisfies, and the structured error
// type used by the highlevel builder. Implementation packages depend on
// api, never the reverse.
package api
