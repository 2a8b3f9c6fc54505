package signing

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signing-core/pkg/address"
	"signing-core/pkg/bank"
	"signing-core/pkg/crypto_util"
	"signing-core/pkg/errno"
	"signing-core/pkg/secp256k1"
	"signing-core/pkg/textual"
	"signing-core/pkg/tx"
	"signing-core/pkg/types"
)

var atomResolver = textual.ResolverFunc(func(d types.Denom) (types.Metadata, bool) {
	if d != "uatom" && d != "ATOM" {
		return types.Metadata{}, false
	}
	return types.Metadata{
		Base:    "uatom",
		Display: "ATOM",
		DenomUnits: []types.DenomUnit{
			{Denom: "uatom", Exponent: 0},
			{Denom: "ATOM", Exponent: 6},
		},
	}, true
})

func coins(t *testing.T, denom string, amount uint64) types.Coins {
	t.Helper()
	c, err := types.NewCoinUint64(denom, amount)
	require.NoError(t, err)
	out, err := types.NewCoins(c)
	require.NoError(t, err)
	return out
}

func pubKey(t *testing.T, b64 string) tx.PublicKey {
	t.Helper()
	k, err := secp256k1.PubKeyFromBase64(b64)
	require.NoError(t, err)
	return tx.NewSecp256k1PublicKey(k)
}

// fixture: my-chain, 10000000uatom 转账，手续费 2000uatom，gas 100000
func myChainTx(t *testing.T) (tx.SignerData, tx.TxData) {
	t.Helper()
	key := pubKey(t, "Auvdf+T963bciiBe9l15DNMOijdaXCUo6zqSOvH7TXlN")
	sd := tx.SignerData{
		Address:       address.MustFromBech32("cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs"),
		ChainID:       "my-chain",
		AccountNumber: 1,
		Sequence:      2,
		PubKey:        key,
	}
	data := tx.TxData{
		Body: tx.TxBody{Messages: []tx.Message{bank.MsgSend{
			FromAddress: address.MustFromBech32("cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs"),
			ToAddress:   address.MustFromBech32("cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t"),
			Amount:      coins(t, "uatom", 10000000),
		}}},
		AuthInfo: tx.AuthInfo{
			SignerInfos: []tx.SignerInfo{{PublicKey: key, ModeInfo: tx.ModeInfo{Single: tx.SignModeTextual}, Sequence: 2}},
			Fee:         tx.Fee{Amount: coins(t, "uatom", 2000), GasLimit: 100000},
		},
	}
	return sd, data
}

// fixture: test-chain, 1uatom 转账，只有 gas limit，签名来自硬件钱包
func testChainTx(t *testing.T) (tx.SignerData, tx.TxData) {
	t.Helper()
	key := pubKey(t, "A7Jg0Wg+RHwI7CAkSbCjpfWFROGtYYkUlaBVxCT6UXJ4")
	sd := tx.SignerData{
		Address:       address.MustFromBech32("cosmos12vrgunwvszgzpykdrqlx3m6puedvcajlxcyw8z"),
		ChainID:       "test-chain",
		AccountNumber: 8,
		Sequence:      18,
		PubKey:        key,
	}
	data := tx.TxData{
		Body: tx.TxBody{Messages: []tx.Message{bank.MsgSend{
			FromAddress: address.MustFromBech32("cosmos12vrgunwvszgzpykdrqlx3m6puedvcajlxcyw8z"),
			ToAddress:   address.MustFromBech32("cosmos1syavy2npfyt9tcncdtsdzf7kny9lh777pahuux"),
			Amount:      coins(t, "uatom", 1),
		}}},
		AuthInfo: tx.AuthInfo{
			SignerInfos: []tx.SignerInfo{{PublicKey: key, ModeInfo: tx.ModeInfo{Single: tx.SignModeTextual}, Sequence: 18}},
			Fee:         tx.Fee{GasLimit: 200000},
		},
	}
	return sd, data
}

type expectedScreen struct {
	title   string
	content string
	indent  uint8
	expert  bool
}

func assertScreens(t *testing.T, want []expectedScreen, got []textual.Screen) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.title, got[i].Title, "screen %d", i)
		assert.Equal(t, w.content, got[i].Content.String(), "screen %d", i)
		assert.Equal(t, w.indent, got[i].Indent, "screen %d", i)
		assert.Equal(t, w.expert, got[i].Expert, "screen %d", i)
	}
}

func TestRenderMyChain(t *testing.T) {
	sd, data := myChainTx(t)

	screens, err := NewTextualHandler(atomResolver).Render(sd, data)
	require.NoError(t, err)

	assertScreens(t, []expectedScreen{
		{"Chain id", "my-chain", 0, false},
		{"Account number", "1", 0, false},
		{"Sequence", "2", 0, false},
		{"Address", "cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs", 0, true},
		{"Public key", "/cosmos.crypto.secp256k1.PubKey", 0, true},
		{"Key", "02EB DD7F E4FD EB76 DC8A 205E F65D 790C D30E 8A37 5A5C 2528 EB3A 923A F1FB 4D79 4D", 1, true},
		{"", "This transaction has 1 Message", 0, false},
		{"Message (1/1)", "/cosmos.bank.v1beta1.MsgSend", 1, false},
		{"From address", "cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs", 2, false},
		{"To address", "cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t", 2, false},
		{"Amount", "10 ATOM", 2, false},
		{"", "End of Message", 0, false},
		{"Fees", "0.002 ATOM", 0, false},
		{"Gas limit", "100'000", 0, true},
		{"Hash of raw bytes", "785bd306ea8962cdb9600089bdd65f3dc029e1aea112dee69e19546c9adad86e", 0, true},
	}, screens)
}

func TestSignBytesMatchHardwareWallet(t *testing.T) {
	sd, data := testChainTx(t)
	h := NewTextualHandler(nil)

	env, err := h.Envelope(sd, data)
	require.NoError(t, err)
	assert.Equal(t, "e6b272130c16cc9c241c15a12ba105cb47d56ac85cca9a6b451736c179b268ab", env.Hash())

	screens, err := h.Render(sd, data)
	require.NoError(t, err)
	assertScreens(t, []expectedScreen{
		{"Chain id", "test-chain", 0, false},
		{"Account number", "8", 0, false},
		{"Sequence", "18", 0, false},
		{"Address", "cosmos12vrgunwvszgzpykdrqlx3m6puedvcajlxcyw8z", 0, true},
		{"Public key", "/cosmos.crypto.secp256k1.PubKey", 0, true},
		{"Key", "03B2 60D1 683E 447C 08EC 2024 49B0 A3A5 F585 44E1 AD61 8914 95A0 55C4 24FA 5172 78", 1, true},
		{"", "This transaction has 1 Message", 0, false},
		{"Message (1/1)", "/cosmos.bank.v1beta1.MsgSend", 1, false},
		{"From address", "cosmos12vrgunwvszgzpykdrqlx3m6puedvcajlxcyw8z", 2, false},
		{"To address", "cosmos1syavy2npfyt9tcncdtsdzf7kny9lh777pahuux", 2, false},
		{"Amount", "1 uatom", 2, false},
		{"", "End of Message", 0, false},
		{"Gas limit", "200'000", 0, true},
		{"Hash of raw bytes", "e6b272130c16cc9c241c15a12ba105cb47d56ac85cca9a6b451736c179b268ab", 0, true},
	}, screens)

	raw, err := os.ReadFile("testdata/textual_sign_doc.hex")
	require.NoError(t, err)
	want, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	require.NoError(t, err)

	signBytes, err := h.GetSignBytes(sd, data)
	require.NoError(t, err)
	assert.Equal(t, want, signBytes)

	sig, _ := hex.DecodeString("3a520c399839fa082ef1939d2cb6b81ddd669dfe9eebb5e11eea4ff98a7d0c923aed300904aa7b6aaa6820b156f86c40b5bb1aa5a7e339746d560ba453090c4f")
	require.NoError(t, VerifySignature(sd.PubKey, signBytes, sig))
	require.NoError(t, h.VerifyTx(sd, data, sig))

	// 改动任何展示内容都会让签名失效
	data.AuthInfo.Fee.GasLimit = 200001
	err = h.VerifyTx(sd, data, sig)
	assert.True(t, errors.Is(err, errno.ErrSignatureInvalid))

	err = VerifySignature(sd.PubKey, signBytes, sig[:63])
	assert.True(t, errors.Is(err, errno.ErrDecode))
	err = VerifySignature(sd.PubKey, nil, sig)
	assert.True(t, errors.Is(err, errno.ErrMissingField))
}

func titles(screens []textual.Screen) map[string]bool {
	out := make(map[string]bool, len(screens))
	for _, s := range screens {
		out[s.Title] = true
	}
	return out
}

func TestOmissionLaws(t *testing.T) {
	payer := address.MustFromBech32("cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t")

	tests := []struct {
		name    string
		mutate  func(sd *tx.SignerData, data *tx.TxData)
		title   string
		present bool
	}{
		{"account number zero", func(sd *tx.SignerData, _ *tx.TxData) { sd.AccountNumber = 0 }, "Account number", false},
		{"sequence zero", func(sd *tx.SignerData, _ *tx.TxData) { sd.Sequence = 0 }, "Sequence", false},
		{"gas limit zero", func(_ *tx.SignerData, d *tx.TxData) { d.AuthInfo.Fee.GasLimit = 0 }, "Gas limit", false},
		{"no fees", func(_ *tx.SignerData, d *tx.TxData) { d.AuthInfo.Fee.Amount = nil }, "Fees", false},
		{"timeout height absent", func(*tx.SignerData, *tx.TxData) {}, "Timeout height", false},
		{"timeout height set", func(_ *tx.SignerData, d *tx.TxData) { d.Body.TimeoutHeight = 1000 }, "Timeout height", true},
		{"memo absent", func(*tx.SignerData, *tx.TxData) {}, "Memo", false},
		{"memo set", func(_ *tx.SignerData, d *tx.TxData) { d.Body.Memo = "gm" }, "Memo", true},
		{"fee payer absent", func(*tx.SignerData, *tx.TxData) {}, "Fee payer", false},
		{"fee payer set", func(_ *tx.SignerData, d *tx.TxData) { d.AuthInfo.Fee.Payer = payer }, "Fee payer", true},
		{"fee granter absent", func(*tx.SignerData, *tx.TxData) {}, "Fee granter", false},
		{"fee granter set", func(_ *tx.SignerData, d *tx.TxData) { d.AuthInfo.Fee.Granter = "granter" }, "Fee granter", true},
		{"tip absent", func(*tx.SignerData, *tx.TxData) {}, "Tip", false},
		{"tip set", func(_ *tx.SignerData, d *tx.TxData) {
			d.AuthInfo.Tip = &tx.Tip{Amount: coins(t, "uatom", 5), Tipper: payer}
		}, "Tip", true},
		{"tipper set", func(_ *tx.SignerData, d *tx.TxData) {
			d.AuthInfo.Tip = &tx.Tip{Amount: coins(t, "uatom", 5), Tipper: payer}
		}, "Tipper", true},
		{"tip without tipper", func(_ *tx.SignerData, d *tx.TxData) {
			d.AuthInfo.Tip = &tx.Tip{Amount: coins(t, "uatom", 5)}
		}, "Tipper", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd, data := myChainTx(t)
			tt.mutate(&sd, &data)

			screens, err := NewTextualHandler(atomResolver).Render(sd, data)
			require.NoError(t, err)
			assert.Equal(t, tt.present, titles(screens)[tt.title])

			for _, s := range screens {
				assert.NotEmpty(t, s.Content.String())
			}
			last := screens[len(screens)-1]
			assert.Equal(t, "Hash of raw bytes", last.Title)
		})
	}
}

func TestOptionalFieldOrder(t *testing.T) {
	sd, data := myChainTx(t)
	payer := address.MustFromBech32("cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t")
	data.Body.Memo = "gm"
	data.Body.TimeoutHeight = 1000
	data.AuthInfo.Fee.Payer = payer
	data.AuthInfo.Fee.Granter = "cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs"
	data.AuthInfo.Tip = &tx.Tip{Amount: coins(t, "uatom", 5000), Tipper: payer}

	screens, err := NewTextualHandler(atomResolver).Render(sd, data)
	require.NoError(t, err)

	var tail []string
	for _, s := range screens[12:] {
		tail = append(tail, s.Title+"="+s.Content.String())
	}
	assert.Equal(t, []string{
		"Memo=gm",
		"Fees=0.002 ATOM",
		"Fee payer=cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t",
		"Fee granter=cosmos1ulav3hsenupswqfkw2y3sup5kgtqwnvqa8eyhs",
		"Tip=0.005 ATOM",
		"Tipper=cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t",
		"Gas limit=100'000",
		"Timeout height=1'000",
		"Hash of raw bytes=" + screens[len(screens)-1].Content.String(),
	}, tail)
	assert.True(t, screens[len(screens)-2].Expert)
}

func TestMessageHeader(t *testing.T) {
	sd, data := myChainTx(t)
	data.Body.Messages = append(data.Body.Messages, data.Body.Messages[0])

	screens, err := NewTextualHandler(atomResolver).Render(sd, data)
	require.NoError(t, err)
	assert.Equal(t, "This transaction has 2 Messages", screens[6].Content.String())
	assert.Equal(t, "Message (1/2)", screens[7].Title)
	assert.Equal(t, "Message (2/2)", screens[11].Title)
	assert.Equal(t, "End of Message", screens[15].Content.String())

	data.Body.Messages = nil
	screens, err = NewTextualHandler(atomResolver).Render(sd, data)
	require.NoError(t, err)
	assert.Equal(t, "This transaction has 0 Messages", screens[6].Content.String())
	assert.Equal(t, "End of Message", screens[7].Content.String())
}

type brokenMsg struct{}

func (brokenMsg) TypeURL() string { return "/test.Broken" }
func (brokenMsg) Marshal() ([]byte, error) { return []byte{0x0a, 0x00}, nil }
func (m brokenMsg) Clone() tx.Message { return m }
func (brokenMsg) Format(textual.MetadataResolver) ([]textual.Screen, error) {
	return nil, errno.Wrapf(errno.ErrRendering, "broken")
}

func TestRenderFailsFast(t *testing.T) {
	h := NewTextualHandler(atomResolver)

	sd, data := myChainTx(t)
	data.Body.Messages = append(data.Body.Messages, brokenMsg{})
	screens, err := h.Render(sd, data)
	assert.Nil(t, screens)
	assert.True(t, errors.Is(err, errno.ErrRendering))

	sd, data = myChainTx(t)
	huge, err := types.NewCoin("uatom", "115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	data.AuthInfo.Fee.Amount = types.Coins{huge}
	screens, err = h.Render(sd, data)
	assert.Nil(t, screens)
	assert.True(t, errors.Is(err, errno.ErrRendering))

	_, err = h.GetSignBytes(sd, data)
	assert.True(t, errors.Is(err, errno.ErrRendering))

	sd, data = myChainTx(t)
	sd.PubKey = tx.PublicKey{}
	_, err = h.Render(sd, data)
	assert.True(t, errors.Is(err, errno.ErrMissingField))
}

func TestEnvelopeOwnsItsData(t *testing.T) {
	sd, data := myChainTx(t)
	h := NewTextualHandler(atomResolver)

	env, err := h.Envelope(sd, data)
	require.NoError(t, err)
	before, err := env.Format(atomResolver)
	require.NoError(t, err)

	// 原地修改调用方持有的底层数组
	msg := data.Body.Messages[0].(bank.MsgSend)
	msg.Amount[0].Amount = *uint256.NewInt(999000000)
	msg.ToAddress[0] ^= 0xff
	msg.FromAddress[0] ^= 0xff
	data.AuthInfo.Fee.Amount[0].Denom = "uosmo"
	sd.Address[0] ^= 0xff

	after, err := env.Format(atomResolver)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "10 ATOM", after[10].Content.String())
	assert.Equal(t, "cosmos1ejrf4cur2wy6kfurg9f2jppp2h3afe5h6pkh5t", after[9].Content.String())

	data.Body.Messages[0] = brokenMsg{}

	after, err = env.Format(atomResolver)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, env.Messages())
}

func TestWithDigest(t *testing.T) {
	sd, data := myChainTx(t)

	sha, err := NewTextualHandler(atomResolver).Envelope(sd, data)
	require.NoError(t, err)
	keccak, err := NewTextualHandler(atomResolver, WithDigest(crypto_util.CalculateKeccak256)).Envelope(sd, data)
	require.NoError(t, err)
	blake, err := NewTextualHandler(atomResolver, WithDigest(crypto_util.CalculateBlake3)).Envelope(sd, data)
	require.NoError(t, err)

	assert.Equal(t, "785bd306ea8962cdb9600089bdd65f3dc029e1aea112dee69e19546c9adad86e", sha.Hash())
	assert.Len(t, keccak.Hash(), 64)
	assert.Len(t, blake.Hash(), 64)
	assert.NotEqual(t, sha.Hash(), keccak.Hash())
	assert.NotEqual(t, keccak.Hash(), blake.Hash())
}

func TestRenderConcurrent(t *testing.T) {
	sd, data := myChainTx(t)
	h := NewTextualHandler(atomResolver)
	want, err := h.Render(sd, data)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]textual.Screen, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = h.Render(sd, data)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
