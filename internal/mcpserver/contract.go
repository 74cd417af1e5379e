package mcpserver

// RecordFormatContract describes the upstream table row format so LLM
// consumers know what the feed tools return and why rows disappear.
const RecordFormatContract = `# Laguz Upstream Record Contract

Field notes come from an externally authored table. Rows are weakly typed;
the pipeline normalizes them with these rules.

## Field aliases (first non-empty wins, case-sensitive)

- title:     Title, Name            (fallback: "Field note")
- kind:      Type                   (fallback: "Note")
- body:      Excerpt, Text, Content
- timestamp: Published, Date, Created
- link:      __url, URL, Url, Link
- media:     Media, Image, Photo, Video

## Visibility

A row is published only when its ` + "`Public`" + ` field is affirmative:
boolean true, the number 1, or one of the strings
"true", "yes", "y", "1", "checked", "on", "✅", "✔", "✔︎"
(case-insensitive, trimmed). Everything else fails closed — the row is
silently excluded.

## Media

The media field may be a bare URL string, an object with a ` + "`url`" + `
property, or a non-empty list of either; only the first item is used.
URLs ending in .mp4/.mov/.webm/.avi or containing "video" render as video.

## Dates

Timestamps are parsed best-effort. Unparsable values are never fatal:
the note sorts as oldest and displays its raw date text verbatim.
`
