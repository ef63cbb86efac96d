// Package export hands graph snapshots to the host application.
//
// The editor calls a [Publisher] when the user asks for an export. This
// package provides publishers for the usual hand-off points:
//
//   - [WriterPublisher] and [FilePublisher]: indented JSON
//   - [HTTPPublisher]: POST to a host endpoint, retried on 5xx
//   - [RedisPublisher]: PUBLISH on a channel and optionally SET a key
//   - [MongoPublisher]: insert a document per export
//
// [Multi] fans one export out to several publishers and [FromConfig] builds
// the set named in the configuration.
//
// Every publisher sends the same JSON document:
//
//	{"nodes":[{"id":"1","x":600,"y":300,"color":"red"}],
//	 "links":[{"source":"1","target":"1","weight":1}]}
package export
