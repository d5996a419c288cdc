//go:build release

package config

// DebugBuild is true unless the client is built with the release tag.
const DebugBuild = false
