package chatapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecIsRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "json", c.Name())
}

func TestCodec_EmptyPayload(t *testing.T) {
	var req LogoutRequest
	assert.NoError(t, Codec{}.Unmarshal(nil, &req))
}

func TestCodec_Errors(t *testing.T) {
	_, err := Codec{}.Marshal(make(chan int))
	assert.Error(t, err)

	var req CreateRoomRequest
	err = Codec{}.Unmarshal([]byte(`{"title":`), &req)
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	data, err := Codec{}.Marshal(&CreateRoomRequest{Title: "Ideas"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Ideas"}`, string(data))

	var out CreateRoomRequest
	require.NoError(t, Codec{}.Unmarshal(data, &out))
	assert.Equal(t, "Ideas", out.Title)
}
