package blockchain

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/campaign-keeper/internal/domain/bindings"
)

// rpcServer answers the JSON-RPC methods used by campaign handles
type rpcServer struct {
	t       *testing.T
	chainID uint64

	mu      sync.Mutex
	results map[string][]byte // method selector -> abi encoded output
	calls   []string
}

func newRPCServer(t *testing.T, chainID uint64) (*rpcServer, string) {
	t.Helper()
	s := &rpcServer{t: t, chainID: chainID, results: map[string][]byte{}}
	srv := httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(srv.Close)
	return s, srv.URL
}

// returns registers the encoded outputs of a campaign method
func (s *rpcServer) returns(method string, values ...any) {
	s.t.Helper()
	m, ok := bindings.NewCampaign().ABI().Methods[method]
	require.True(s.t, ok, "unknown method %s", method)
	out, err := m.Outputs.Pack(values...)
	require.NoError(s.t, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[hex.EncodeToString(m.ID)] = out
}

func (s *rpcServer) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     json.RawMessage   `json:"id"`
		Method string            `json:"method"`
		Params []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch req.Method {
	case "eth_chainId":
		resp["result"] = hexutil.EncodeUint64(s.chainID)
	case "eth_call":
		var arg struct {
			Input hexutil.Bytes `json:"input"`
			Data  hexutil.Bytes `json:"data"`
		}
		_ = json.Unmarshal(req.Params[0], &arg)
		data := arg.Input
		if len(data) == 0 {
			data = arg.Data
		}
		selector := hex.EncodeToString(data[:4])

		s.mu.Lock()
		s.calls = append(s.calls, selector)
		out, ok := s.results[selector]
		s.mu.Unlock()

		if ok {
			resp["result"] = hexutil.Encode(out)
		} else {
			resp["error"] = map[string]any{"code": -32000, "message": "execution reverted"}
		}
	default:
		resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
