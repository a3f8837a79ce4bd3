// Package ciutil locates the project root and the test database URL across
// local and CI environments.
package ciutil
