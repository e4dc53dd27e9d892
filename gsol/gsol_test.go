package gsol

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stakepool "github.com/taliaesther/sunrise-app/gen/stake_pool"
	sunrisestake "github.com/taliaesther/sunrise-app/gen/sunrise_stake"
	solanago "github.com/taliaesther/sunrise-app/solana"
)

type fakeConn struct {
	accounts map[solana.PublicKey]*rpc.Account
	calls    int
	err      error
}

func newFakeConn() *fakeConn {
	return &fakeConn{accounts: map[solana.PublicKey]*rpc.Account{}}
}

func (f *fakeConn) GetAccountInfoWithOpts(_ context.Context, account solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	acc, ok := f.accounts[account]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: acc}, nil
}

func (f *fakeConn) put(key, owner solana.PublicKey, data []byte) {
	f.accounts[key] = &rpc.Account{Owner: owner, Data: rpc.DataBytesOrJSONFromBytes(data)}
}

func (f *fakeConn) putStake(t *testing.T, key solana.PublicKey, state *solanago.StakeStateV2) {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, state.MarshalWithEncoder(bin.NewBinEncoder(buf)))
	f.put(key, solana.StakeProgramID, buf.Bytes())
}

func newKey() solana.PublicKey {
	return solana.NewWallet().PublicKey()
}

func testConfig() Config {
	return Config{
		StateAddress: newKey(),
		GSolMint:     newKey(),
		Treasury:     newKey(),
	}
}

func testBlaze() BlazeState {
	pool := newKey()
	withdrawAuthority, _, _ := FindStakePoolWithdrawAuthority(pool)
	depositAuthority, _, _ := FindStakePoolDepositAuthority(pool)
	return BlazeState{
		Pool:              pool,
		WithdrawAuthority: withdrawAuthority,
		DepositAuthority:  depositAuthority,
		ReserveAccount:    newKey(),
		FeesDepot:         newKey(),
		ValidatorList:     newKey(),
		BSolMint:          newKey(),
	}
}

func delegatedTo(voter solana.PublicKey) *solanago.StakeStateV2 {
	return &solanago.StakeStateV2{
		Status: solanago.StakeStateStake,
		Stake: solanago.Stake{
			Delegation: solanago.Delegation{
				VoterPubkey:       voter,
				Stake:             3_000_000_000,
				DeactivationEpoch: ^uint64(0),
			},
		},
	}
}

// instructionAccounts resolves the single instruction of tx back to its metas.
func instructionAccounts(t *testing.T, tx *solana.Transaction) (solana.PublicKey, []*solana.AccountMeta, []byte) {
	t.Helper()
	require.Len(t, tx.Message.Instructions, 1)
	compiled := tx.Message.Instructions[0]
	program, err := tx.Message.ResolveProgramIDIndex(compiled.ProgramIDIndex)
	require.NoError(t, err)
	metas, err := compiled.ResolveInstructionAccounts(&tx.Message)
	require.NoError(t, err)
	return program, metas, compiled.Data
}

func TestProgramAddresses(t *testing.T) {
	config := testConfig()

	mintAuthority, bump, err := FindGSolMintAuthority(config)
	require.NoError(t, err)
	want, wantBump, err := solana.FindProgramAddress(
		[][]byte{config.StateAddress.Bytes(), []byte("gsol_mint_authority")},
		sunrisestake.ProgramID,
	)
	require.NoError(t, err)
	assert.Equal(t, want, mintAuthority)
	assert.Equal(t, wantBump, bump)

	again, _, err := FindGSolMintAuthority(config)
	require.NoError(t, err)
	assert.Equal(t, mintAuthority, again)

	bsolAuthority, _, err := FindBSolTokenAccountAuthority(config)
	require.NoError(t, err)
	msolAuthority, _, err := FindMSolTokenAccountAuthority(config)
	require.NoError(t, err)
	assert.NotEqual(t, mintAuthority, bsolAuthority)
	assert.NotEqual(t, bsolAuthority, msolAuthority)

	pool := newKey()
	withdraw, _, err := FindStakePoolWithdrawAuthority(pool)
	require.NoError(t, err)
	want, _, err = solana.FindProgramAddress([][]byte{pool.Bytes(), []byte("withdraw")}, stakepool.ProgramID)
	require.NoError(t, err)
	assert.Equal(t, want, withdraw)
}

func TestAssociatedTokenAddress(t *testing.T) {
	owner, mint := newKey(), newKey()
	ata, err := AssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	want, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)
	assert.Equal(t, want, ata)
	assert.NotEqual(t, owner, ata)
}

func TestBlazeDeposit(t *testing.T) {
	config, blaze := testConfig(), testBlaze()
	depositor, gsolAccount := newKey(), newKey()

	tx, err := BlazeDeposit(config, blaze, depositor, gsolAccount, 1_000_000_000)
	require.NoError(t, err)
	assert.Empty(t, tx.Signatures)
	assert.Equal(t, depositor, tx.Message.AccountKeys[0])
	assert.Equal(t, uint8(1), tx.Message.Header.NumRequiredSignatures)

	program, metas, data := instructionAccounts(t, tx)
	assert.Equal(t, sunrisestake.ProgramID, program)
	require.Len(t, metas, 15)

	mintAuthority, _, err := FindGSolMintAuthority(config)
	require.NoError(t, err)
	bsolAuthority, _, err := FindBSolTokenAccountAuthority(config)
	require.NoError(t, err)
	bsolAccount, err := AssociatedTokenAddress(bsolAuthority, blaze.BSolMint)
	require.NoError(t, err)

	assert.Equal(t, config.StateAddress, metas[0].PublicKey)
	assert.Equal(t, config.GSolMint, metas[1].PublicKey)
	assert.Equal(t, mintAuthority, metas[2].PublicKey)
	assert.Equal(t, depositor, metas[3].PublicKey)
	assert.True(t, metas[3].IsSigner)
	assert.Equal(t, gsolAccount, metas[4].PublicKey)
	assert.Equal(t, bsolAccount, metas[5].PublicKey)
	assert.Equal(t, bsolAuthority, metas[6].PublicKey)
	assert.Equal(t, blaze.Pool, metas[7].PublicKey)
	assert.Equal(t, blaze.WithdrawAuthority, metas[8].PublicKey)
	assert.Equal(t, blaze.ReserveAccount, metas[9].PublicKey)
	assert.Equal(t, blaze.FeesDepot, metas[10].PublicKey)
	assert.Equal(t, blaze.BSolMint, metas[11].PublicKey)
	assert.Equal(t, stakepool.ProgramID, metas[12].PublicKey)
	assert.Equal(t, solana.SystemProgramID, metas[13].PublicKey)
	assert.Equal(t, solana.TokenProgramID, metas[14].PublicKey)

	want := append(sunrisestake.SplDepositSolDiscriminator[:], make([]byte, 8)...)
	binary.LittleEndian.PutUint64(want[8:], 1_000_000_000)
	assert.Equal(t, want, []byte(data))
}

func TestBlazeDepositZeroAmount(t *testing.T) {
	tx, err := BlazeDeposit(testConfig(), testBlaze(), newKey(), newKey(), 0)
	require.NoError(t, err)

	_, _, data := instructionAccounts(t, tx)
	lamports, err := sunrisestake.DecodeSplDepositSolData(data)
	require.NoError(t, err)
	assert.Zero(t, lamports)
}

func TestBlazeDepositMissingDepositor(t *testing.T) {
	_, err := BlazeDeposit(testConfig(), testBlaze(), solana.PublicKey{}, newKey(), 1)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.ErrorIs(t, err, sunrisestake.ErrMissingAccount)
}

func TestBlazeDepositStake(t *testing.T) {
	config, blaze := testConfig(), testBlaze()
	stakeAccount, gsolAccount, signer, voter := newKey(), newKey(), newKey(), newKey()

	conn := newFakeConn()
	conn.putStake(t, stakeAccount, delegatedTo(voter))

	tx, err := BlazeDepositStake(context.Background(), config, conn, blaze, stakeAccount, gsolAccount, signer)
	require.NoError(t, err)
	assert.Equal(t, signer, tx.Message.AccountKeys[0])

	program, metas, data := instructionAccounts(t, tx)
	assert.Equal(t, sunrisestake.ProgramID, program)
	require.Len(t, metas, 21)
	assert.Equal(t, signer, metas[3].PublicKey)
	assert.True(t, metas[3].IsSigner)
	assert.Equal(t, stakeAccount, metas[4].PublicKey)
	assert.Equal(t, gsolAccount, metas[5].PublicKey)
	assert.Equal(t, blaze.ValidatorList, metas[9].PublicKey)
	assert.Equal(t, blaze.DepositAuthority, metas[10].PublicKey)
	assert.Equal(t, blaze.WithdrawAuthority, metas[11].PublicKey)
	assert.Equal(t, voter, metas[12].PublicKey)
	assert.Equal(t, solana.SysVarStakeHistoryPubkey, metas[16].PublicKey)
	assert.Equal(t, solana.SysVarClockPubkey, metas[17].PublicKey)
	assert.Equal(t, solana.StakeProgramID, metas[18].PublicKey)
	assert.Equal(t, stakepool.ProgramID, metas[19].PublicKey)
	assert.Equal(t, solana.TokenProgramID, metas[20].PublicKey)
	assert.Equal(t, sunrisestake.SplDepositStakeDiscriminator[:], []byte(data))
}

func TestBlazeDepositStakeNotDelegated(t *testing.T) {
	config, blaze := testConfig(), testBlaze()
	initialized, undelegated := newKey(), newKey()

	conn := newFakeConn()
	conn.putStake(t, initialized, &solanago.StakeStateV2{Status: solanago.StakeStateInitialized})
	conn.putStake(t, undelegated, delegatedTo(solana.PublicKey{}))

	for _, stakeAccount := range []solana.PublicKey{initialized, undelegated} {
		_, err := BlazeDepositStake(context.Background(), config, conn, blaze, stakeAccount, newKey(), newKey())
		assert.ErrorIs(t, err, ErrNotDelegated)
	}
}

func TestBlazeDepositStakeLookupFailed(t *testing.T) {
	config, blaze := testConfig(), testBlaze()
	wrongOwner, garbage := newKey(), newKey()

	conn := newFakeConn()
	conn.put(wrongOwner, solana.SystemProgramID, make([]byte, 200))
	conn.put(garbage, solana.StakeProgramID, []byte{7, 0, 0, 0})

	for _, stakeAccount := range []solana.PublicKey{newKey(), wrongOwner, garbage} {
		_, err := BlazeDepositStake(context.Background(), config, conn, blaze, stakeAccount, newKey(), newKey())
		assert.ErrorIs(t, err, ErrLookupFailed)
	}
}

func TestBlazeDepositStakeTransportError(t *testing.T) {
	stakeAccount := newKey()
	conn := newFakeConn()
	conn.putStake(t, stakeAccount, delegatedTo(newKey()))
	conn.err = errors.New("dial tcp: connection refused")

	_, err := BlazeDepositStake(context.Background(), testConfig(), conn, testBlaze(), stakeAccount, newKey(), newKey())
	require.ErrorIs(t, err, ErrLookupFailed)
	assert.ErrorIs(t, err, conn.err)
	assert.NotErrorIs(t, err, ErrNotDelegated)

	_, err = GetVoterAddress(context.Background(), conn, stakeAccount)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestBlazeDepositStakeMissingSigner(t *testing.T) {
	conn := newFakeConn()
	_, err := BlazeDepositStake(context.Background(), testConfig(), conn, testBlaze(), newKey(), newKey(), solana.PublicKey{})
	assert.ErrorIs(t, err, ErrMissingSigner)
	assert.Zero(t, conn.calls)
}

func TestGetVoterAddress(t *testing.T) {
	stakeAccount, voter := newKey(), newKey()
	conn := newFakeConn()
	conn.putStake(t, stakeAccount, delegatedTo(voter))

	got, err := GetVoterAddress(context.Background(), conn, stakeAccount)
	require.NoError(t, err)
	assert.Equal(t, voter, got)
}

func testMarinade() MarinadeState {
	return MarinadeState{
		StateAddress:        newKey(),
		MSolMint:            newKey(),
		LiqPoolMint:         newKey(),
		LiqPoolSolLegPda:    newKey(),
		LiqPoolMSolLeg:      newKey(),
		TreasuryMSolAccount: newKey(),
	}
}

func TestExtractToTreasury(t *testing.T) {
	config, blaze, marinadeState := testConfig(), testBlaze(), testMarinade()
	payer := newKey()

	tx, err := ExtractToTreasury(config, marinadeState, blaze, payer)
	require.NoError(t, err)
	assert.Equal(t, payer, tx.Message.AccountKeys[0])

	_, metas, data := instructionAccounts(t, tx)
	require.Len(t, metas, 19)

	msolAuthority, _, err := FindMSolTokenAccountAuthority(config)
	require.NoError(t, err)
	msolAccount, err := AssociatedTokenAddress(msolAuthority, marinadeState.MSolMint)
	require.NoError(t, err)
	lpAccount, err := AssociatedTokenAddress(msolAuthority, marinadeState.LiqPoolMint)
	require.NoError(t, err)

	assert.Equal(t, marinadeState.StateAddress, metas[1].PublicKey)
	assert.Equal(t, blaze.Pool, metas[2].PublicKey)
	assert.Equal(t, lpAccount, metas[9].PublicKey)
	assert.Equal(t, msolAccount, metas[11].PublicKey)
	assert.Equal(t, msolAuthority, metas[12].PublicKey)
	assert.Equal(t, config.Treasury, metas[15].PublicKey)
	assert.Equal(t, sunrisestake.ExtractToTreasuryDiscriminator[:], []byte(data))
}

func TestExtractToTreasuryErrors(t *testing.T) {
	_, err := ExtractToTreasury(testConfig(), testMarinade(), testBlaze(), solana.PublicKey{})
	assert.ErrorIs(t, err, ErrMissingSigner)

	config := testConfig()
	config.Treasury = solana.PublicKey{}
	_, err = ExtractToTreasury(config, testMarinade(), testBlaze(), newKey())
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestCustomProgramID(t *testing.T) {
	config := testConfig()
	config.ProgramID = newKey()

	tx, err := BlazeDeposit(config, testBlaze(), newKey(), newKey(), 1)
	require.NoError(t, err)

	program, metas, _ := instructionAccounts(t, tx)
	assert.Equal(t, config.ProgramID, program)

	mintAuthority, _, err := FindGSolMintAuthority(config)
	require.NoError(t, err)
	assert.Equal(t, mintAuthority, metas[2].PublicKey)

	defaultConfig := config
	defaultConfig.ProgramID = solana.PublicKey{}
	defaultAuthority, _, err := FindGSolMintAuthority(defaultConfig)
	require.NoError(t, err)
	assert.NotEqual(t, defaultAuthority, mintAuthority)
}

func TestFetchBlazeState(t *testing.T) {
	pool := newKey()
	layout := &solanago.StakePoolLayout{}
	stored := &solanago.StakePool{
		Manager:               newKey(),
		Staker:                newKey(),
		StakeDepositAuthority: newKey(),
		StakeWithdrawBumpSeed: 255,
		ValidatorList:         newKey(),
		ReserveStake:          newKey(),
		PoolMint:              newKey(),
		ManagerFeeAccount:     newKey(),
		TokenProgramID:        solana.TokenProgramID,
	}
	data, err := layout.Encode(stored)
	require.NoError(t, err)

	conn := newFakeConn()
	conn.put(pool, stakepool.ProgramID, data)

	blaze, err := FetchBlazeState(context.Background(), conn, pool)
	require.NoError(t, err)

	withdrawAuthority, _, err := FindStakePoolWithdrawAuthority(pool)
	require.NoError(t, err)
	assert.Equal(t, BlazeState{
		Pool:              pool,
		WithdrawAuthority: withdrawAuthority,
		DepositAuthority:  stored.StakeDepositAuthority,
		ReserveAccount:    stored.ReserveStake,
		FeesDepot:         stored.ManagerFeeAccount,
		ValidatorList:     stored.ValidatorList,
		BSolMint:          stored.PoolMint,
	}, blaze)
}

func TestFetchBlazeStateErrors(t *testing.T) {
	wrongOwner, notPool := newKey(), newKey()
	conn := newFakeConn()
	conn.put(wrongOwner, solana.TokenProgramID, make([]byte, 300))
	conn.put(notPool, stakepool.ProgramID, make([]byte, 300))

	for _, pool := range []solana.PublicKey{newKey(), wrongOwner, notPool} {
		_, err := FetchBlazeState(context.Background(), conn, pool)
		assert.ErrorIs(t, err, ErrLookupFailed)
	}
}
