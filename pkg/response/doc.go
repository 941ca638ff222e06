// Package response implements the service's uniform API reply envelope.
//
// Every endpoint answers with the same five-field JSON object: success, data,
// message, error and meta. All fields are always present; exactly one of data
// (success path) and error (failure path) is populated. Constructors OK, Fail
// and NotFound enforce that pairing; option funcs attach message, meta and a
// custom status code.
package response
