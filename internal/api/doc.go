// Package api defines wire-format types and converters for the IPC and HTTP
// API layer. It translates identification results and history records into
// transport-friendly DTOs so external consumers never couple to internal
// types.
//
// DTOs use snake_case JSON tags matching the identify result format
// (prediction, distribution, top_features). Timestamps use RFC3339.
package api
