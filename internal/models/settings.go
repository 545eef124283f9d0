package models

// Settings is the single global configuration document. It is schemaless on
// purpose: updates merge fields into the stored document instead of replacing
// it, so unrelated keys written by older app versions survive.
type Settings map[string]any
