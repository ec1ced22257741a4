package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
)

func TestFileDescriptor_Services(t *testing.T) {
	t.Parallel()

	require.NotNil(t, File_docchat_proto)

	services := File_docchat_proto.Services()
	require.Equal(t, 2, services.Len())

	auth := services.ByName("Auth")
	require.NotNil(t, auth)
	assert.Equal(t, 3, auth.Methods().Len())

	chat := services.ByName("Chat")
	require.NotNil(t, chat)
	assert.Equal(t, 5, chat.Methods().Len())

	assert.Equal(t, "docchat.Auth", Auth_ServiceDesc.ServiceName)
	assert.Equal(t, "docchat.Chat", Chat_ServiceDesc.ServiceName)
}

func TestReportTurnRequest_RoundTrip(t *testing.T) {
	t.Parallel()

	in := &ReportTurnRequest{
		SessionId:           "sess-1",
		TokensUsed:          512,
		Cost:                0.004,
		ResponseTimeSeconds: 1.2,
		ModelName:           "gpt-4o-mini",
		UsedRetrieval:       true,
		RetrievalChunkCount: 4,
	}

	raw, err := gproto.Marshal(in)
	require.NoError(t, err)

	out := &ReportTurnRequest{}
	require.NoError(t, gproto.Unmarshal(raw, out))
	assert.True(t, gproto.Equal(in, out))
}
