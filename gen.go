package trivec

//go:generate go run ./cmd/trivec-gen -max 81 -out sizes_gen.go -pkg trivec
