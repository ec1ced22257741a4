// Package proto contains the gRPC service definitions for the docchat server.
//
// Run `go generate ./...` with protoc, protoc-gen-go and protoc-gen-go-grpc
// installed to regenerate the bindings.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative docchat.proto
