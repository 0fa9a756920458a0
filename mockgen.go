//go:build gomock || generate

package moqsub

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqsub -self_package github.com/moqlive/moqsub -destination mock_stream_test.go github.com/moqlive/moqsub Stream"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqsub -self_package github.com/moqlive/moqsub -destination mock_receive_stream_test.go github.com/moqlive/moqsub ReceiveStream"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqsub -self_package github.com/moqlive/moqsub -destination mock_send_stream_test.go github.com/moqlive/moqsub SendStream"

//go:generate sh -c "go run go.uber.org/mock/mockgen -build_flags=\"-tags=gomock\" -package moqsub -self_package github.com/moqlive/moqsub -destination mock_connection_test.go github.com/moqlive/moqsub Connection"
