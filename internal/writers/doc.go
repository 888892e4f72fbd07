// Package writers turns primality results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (catalog text, JSON, JSONL).
//   • The prime package stays arithmetic-only; app stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
