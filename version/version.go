// Package version holds the build version shared by the server and tlctl.
package version

// Version is overridden at build time with
// -ldflags "-X tasklink/version.Version=x.y.z".
var Version = "0.1.0"
