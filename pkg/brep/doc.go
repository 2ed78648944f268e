// Package brep implements a boundary-representation solid modeling kernel.
// A Solid owns an arena of vertices, edges, faces, and shells referenced
// only by small integer handles, never by pointer. Handles are valid only
// relative to the Solid that minted them.
package brep
