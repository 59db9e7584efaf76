// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared contracts for ringchunk: the read-access capability all
// views and buffers expose, the logical range DTO used to narrow
// views, and the pooling contract for chunk recyclers.
//
// This package carries no implementation state; concrete types live
// in ring/ and pool/ and assert compliance at compile time.
package api
