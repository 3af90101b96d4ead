// Package server exposes the simplification pipeline over HTTP.
//
// Routes:
//
//	GET  /                          liveness message
//	GET  /healthz                   status and version
//	POST /romanize                  form field text
//	POST /speak                     form field text, returns the audio URL
//	POST /translate-to-easy-korean  JSON body {"text": ...}
//	GET  /tts/<file>                generated audio
package server
