package api

// Version is the SDK version reported in the default user agent.
const Version = "1.2.0"

// DefaultUserAgent identifies the SDK to the service.
const DefaultUserAgent = "Universal certifier Go SDK v" + Version
