// Package detect decides whether a piece of clipboard or input text names a
// single readable regular file on the local filesystem.
//
// Detection never fails with an error: text that is not a usable file
// reference simply yields ok == false. Accepted forms are a plain path, a
// quoted path, a path starting with ~, and a local file:// URI. Clipboard
// payloads that carry a text/uri-list are honoured when the list holds
// exactly one entry.
package detect
