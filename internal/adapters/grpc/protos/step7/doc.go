// Package step7 contiene los mensajes y stubs gRPC del servicio Step7,
// generados a partir de api/step7.proto.
package step7

//go:generate protoc --proto_path=../../../../../api --go_out=paths=source_relative:. --go-grpc_out=paths=source_relative:. step7.proto

// ServiceName es el nombre completo del servicio, p.ej. para el health check.
const ServiceName = "step7.Step7"
