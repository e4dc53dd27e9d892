package solana

import (
	"errors"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	ErrNotStakePool     = errors.New("not a stake pool account")
	ErrUnknownStakeType = errors.New("unknown stake account state")
)

type Authorized struct {
	Staker     solana.PublicKey
	Withdrawer solana.PublicKey
}

type StakeLockup struct {
	UnixTimeStamp int64
	Epoch         uint64
	Custodian     solana.PublicKey
}

type StakeMeta struct {
	RentExemptReserve uint64
	Authorized        Authorized
	Lockup            StakeLockup
}

type Delegation struct {
	VoterPubkey        solana.PublicKey
	Stake              uint64
	ActivationEpoch    uint64
	DeactivationEpoch  uint64
	WarmupCooldownRate float64
}

type Stake struct {
	Delegation      Delegation
	CreditsObserved uint64
}

const (
	StakeStateUninitialized uint32 = iota
	StakeStateInitialized
	StakeStateStake
	StakeStateRewardsPool
)

// StakeStateV2 is the native stake program account, tagged by Status.
// Meta is set for Initialized and Stake, Stake only for Stake.
type StakeStateV2 struct {
	Status     uint32
	Meta       StakeMeta
	Stake      Stake
	StakeFlags uint8
}

// Voter returns the vote account the stake is delegated to.
func (state *StakeStateV2) Voter() (solana.PublicKey, bool) {
	if state.Status != StakeStateStake {
		return solana.PublicKey{}, false
	}
	voter := state.Stake.Delegation.VoterPubkey
	if voter.IsZero() {
		return solana.PublicKey{}, false
	}
	return voter, true
}

func DecodeStakeState(data []byte) (*StakeStateV2, error) {
	state := &StakeStateV2{}
	if err := state.UnmarshalWithDecoder(bin.NewBinDecoder(data)); err != nil {
		return nil, err
	}
	return state, nil
}

func (authorized *Authorized) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(authorized.Staker[:], pk)

	pk, err = decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(authorized.Withdrawer[:], pk)
	return nil
}

func (lockup *StakeLockup) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	lockup.UnixTimeStamp, err = decoder.ReadInt64(bin.LE)
	if err != nil {
		return err
	}

	lockup.Epoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	pk, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(lockup.Custodian[:], pk)
	return nil
}

func (meta *StakeMeta) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	var err error
	meta.RentExemptReserve, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	if err = meta.Authorized.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}
	return meta.Lockup.UnmarshalWithDecoder(decoder)
}

func (delegation *Delegation) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	voterPubkey, err := decoder.ReadBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	copy(delegation.VoterPubkey[:], voterPubkey)

	delegation.Stake, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	delegation.ActivationEpoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	delegation.DeactivationEpoch, err = decoder.ReadUint64(bin.LE)
	if err != nil {
		return err
	}

	delegation.WarmupCooldownRate, err = decoder.ReadFloat64(bin.LE)
	return err
}

func (stake *Stake) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	if err := stake.Delegation.UnmarshalWithDecoder(decoder); err != nil {
		return err
	}

	var err error
	stake.CreditsObserved, err = decoder.ReadUint64(bin.LE)
	return err
}

func (state *StakeStateV2) UnmarshalWithDecoder(decoder *bin.Decoder) error {
	status, err := decoder.ReadUint32(bin.LE)
	if err != nil {
		return err
	}
	state.Status = status

	switch status {
	case StakeStateUninitialized, StakeStateRewardsPool:
		// nothing to deserialize
		return nil
	case StakeStateInitialized:
		return state.Meta.UnmarshalWithDecoder(decoder)
	case StakeStateStake:
		if err = state.Meta.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
		if err = state.Stake.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
		// accounts written before stake flags existed end here
		if decoder.Remaining() == 0 {
			return nil
		}
		state.StakeFlags, err = decoder.ReadUint8()
		return err
	default:
		return ErrUnknownStakeType
	}
}

func (state *StakeStateV2) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteUint32(state.Status, bin.LE); err != nil {
		return err
	}
	if state.Status != StakeStateInitialized && state.Status != StakeStateStake {
		return nil
	}

	meta := state.Meta
	if err := encoder.WriteUint64(meta.RentExemptReserve, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteBytes(meta.Authorized.Staker[:], false); err != nil {
		return err
	}
	if err := encoder.WriteBytes(meta.Authorized.Withdrawer[:], false); err != nil {
		return err
	}
	if err := encoder.WriteInt64(meta.Lockup.UnixTimeStamp, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteUint64(meta.Lockup.Epoch, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteBytes(meta.Lockup.Custodian[:], false); err != nil {
		return err
	}
	if state.Status == StakeStateInitialized {
		return nil
	}

	delegation := state.Stake.Delegation
	if err := encoder.WriteBytes(delegation.VoterPubkey[:], false); err != nil {
		return err
	}
	if err := encoder.WriteUint64(delegation.Stake, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteUint64(delegation.ActivationEpoch, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteUint64(delegation.DeactivationEpoch, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteFloat64(delegation.WarmupCooldownRate, bin.LE); err != nil {
		return err
	}
	if err := encoder.WriteUint64(state.Stake.CreditsObserved, bin.LE); err != nil {
		return err
	}
	return encoder.WriteUint8(state.StakeFlags)
}
