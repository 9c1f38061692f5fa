// Package internaldefs exposes stable metric name and bucket definitions
// shared by exporter implementations.
//
// Counter and histogram definitions live here so that the Prometheus and
// OTel exporters render identical metric names and bucket boundaries. A
// change to a definition in this package affects all exporters at once.
//
// # What this package must NOT do
//
//   - Perform I/O.
//   - Import any exporter package.
package internaldefs
