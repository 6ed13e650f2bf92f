// Package config loads slice job files.
//
// A job file carries the three external parameters of a slicing run —
// input mesh path, output path, and layer height — so a job can be
// re-run reproducibly. YAML is the primary format; .json job files are
// also accepted and may contain comments, which are stripped with
// github.com/tidwall/jsonc before standard JSON decoding.
package config
