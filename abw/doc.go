// Package abw converts AbiWord XML documents into a stream of structured
// document-construction events delivered to a Consumer.
//
// The conversion is a two-pass process: a styles pre-pass measures table
// geometry and indexes embedded binary data, and a content pass walks the
// document again, resolving inherited styles and emitting a well-nested
// sequence of open/close/insert events.
package abw
