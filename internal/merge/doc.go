// file: internal/merge/doc.go

/*
Package merge assembles rule fragments (rules/*.part) into one output stream.

Every fragment may start with a section header, a first line beginning with
"! ". Fragments are sorted by the base name of their build-location path,
grouped by header and written section by section:
  - header-less fragments come first, verbatim
  - each headed section is introduced by a blank line and the header line once
  - a headed fragment contributes everything after its first line

Each logical fragment name has two candidate locations. The build location
wins when it exists, otherwise the source location is used.
*/
package merge
