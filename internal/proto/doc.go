// Package proto holds the protobuf contract of the skillboard gRPC service.
//
// skillboard.pb.go and skillboard_grpc.pb.go are generated from
// skillboard.proto and must be regenerated after the schema changes.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative skillboard.proto
