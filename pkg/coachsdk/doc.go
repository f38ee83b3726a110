// Package coachsdk provides a Go client for the UltraCoach coaching
// service, plus the request/response types shared between the client and
// the server's HTTP handlers.
//
// Unauthenticated operations (register, login, invitation validation) hang
// off SDKClient; everything else requires a Session obtained from Login.
package coachsdk
