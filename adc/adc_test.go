package adc

import (
	"testing"

	"github.com/hbacelar8/stm32g0-ll-drivers/pac"
)

func newTestADC() (*ADC, *pac.ADC_Type) {
	rb := new(pac.ADC_Type)
	return New(rb), rb
}

func TestCalibrateWaitsForHardwareClear(t *testing.T) {
	a, rb := newTestADC()

	// The hosted block has no silicon behind it, so play the hardware's
	// part: clear ADCAL once the driver has set it.
	done := make(chan struct{})
	go func() {
		for !rb.CR.HasBits(pac.ADC_CR_ADCAL) {
		}
		rb.CR.ClearBits(pac.ADC_CR_ADCAL)
		close(done)
	}()

	a.Calibrate()
	<-done

	if rb.CR.HasBits(pac.ADC_CR_ADCAL) {
		t.Error("ADCAL still set after Calibrate returned")
	}
}

func TestEnableWaitsForReadyFlag(t *testing.T) {
	a, rb := newTestADC()

	go func() {
		for !rb.CR.HasBits(pac.ADC_CR_ADEN) {
		}
		rb.ISR.SetBits(pac.ADC_ISR_ADRDY)
	}()

	a.Enable()

	if !rb.CR.HasBits(pac.ADC_CR_ADEN) {
		t.Error("ADEN not set after Enable")
	}
}

func TestReadWaitsForEndOfConversion(t *testing.T) {
	a, rb := newTestADC()
	a.StartConversion()

	if !rb.CR.HasBits(pac.ADC_CR_ADSTART) {
		t.Fatal("ADSTART not set after StartConversion")
	}

	go func() {
		rb.DR.Set(0x0ABC)
		rb.ISR.SetBits(pac.ADC_ISR_EOC)
	}()

	if got := a.Read(); got != 0x0ABC {
		t.Errorf("Read = %#x, want 0x0ABC", got)
	}
}

func TestSetClockModeOnlyTouchesField(t *testing.T) {
	a, rb := newTestADC()
	rb.CFGR2.Set(0x3FFF_FFFF)

	a.SetClockMode(ClockSyncPclkDiv4)

	want := uint32(0x3FFF_FFFF) | uint32(ClockSyncPclkDiv4.Bits())<<pac.ADC_CFGR2_CKMODE_Pos
	if got := rb.CFGR2.Get(); got != want {
		t.Errorf("CFGR2 = %#x, want %#x", got, want)
	}
}

func TestSetResolutionOnlyTouchesField(t *testing.T) {
	a, rb := newTestADC()
	rb.CFGR1.Set(0xFFFF_FFE7)

	a.SetResolution(Bits8)

	want := uint32(0xFFFF_FFE7) | uint32(Bits8.Bits())<<pac.ADC_CFGR1_RES_Pos
	if got := rb.CFGR1.Get(); got != want {
		t.Errorf("CFGR1 = %#x, want %#x", got, want)
	}
}

func TestSetDataAlignment(t *testing.T) {
	a, rb := newTestADC()

	a.SetDataAlignment(AlignLeft)
	if !rb.CFGR1.HasBits(pac.ADC_CFGR1_ALIGN) {
		t.Error("ALIGN not set for left alignment")
	}

	a.SetDataAlignment(AlignRight)
	if rb.CFGR1.HasBits(pac.ADC_CFGR1_ALIGN) {
		t.Error("ALIGN still set for right alignment")
	}
}

func TestSetLowPowerModeOnlyClears(t *testing.T) {
	a, rb := newTestADC()
	rb.CFGR1.Set(uint32(AutoWaitAndPowerOff.Bits()) << pac.ADC_CFGR1_LP_Pos)

	a.SetLowPowerMode(AutoWait)
	if got := rb.CFGR1.Get() >> pac.ADC_CFGR1_LP_Pos & pac.ADC_CFGR1_LP_Msk; got != uint32(AutoPowerOff.Bits()) {
		t.Errorf("low power field = %#x after clearing auto-wait, want %#x", got, AutoPowerOff.Bits())
	}

	// Requesting a mode from the "none" state must not turn anything on.
	rb.CFGR1.Set(0)
	a.SetLowPowerMode(AutoWaitAndPowerOff)
	if got := rb.CFGR1.Get(); got != 0 {
		t.Errorf("CFGR1 = %#x, low power setter set bits", got)
	}
}

func TestSetExternalTrigger(t *testing.T) {
	a, rb := newTestADC()
	rb.CFGR1.Set(0xFFFF_FFFF)

	a.SetExternalTrigger(TriggerRisingEdge, TRG3)

	got := rb.CFGR1.Get()
	if f := got >> pac.ADC_CFGR1_EXTEN_Pos & pac.ADC_CFGR1_EXTEN_Msk; f != uint32(TriggerRisingEdge.Bits()) {
		t.Errorf("EXTEN = %#x, want %#x", f, TriggerRisingEdge.Bits())
	}
	if f := got >> pac.ADC_CFGR1_EXTSEL_Pos & pac.ADC_CFGR1_EXTSEL_Msk; f != uint32(TRG3.Bits()) {
		t.Errorf("EXTSEL = %#x, want %#x", f, TRG3.Bits())
	}
	keep := uint32(0xFFFF_FFFF) &^ (pac.ADC_CFGR1_EXTEN_Msk << pac.ADC_CFGR1_EXTEN_Pos) &^ (pac.ADC_CFGR1_EXTSEL_Msk << pac.ADC_CFGR1_EXTSEL_Pos)
	if got&keep != keep {
		t.Errorf("CFGR1 = %#x, trigger write touched foreign bits", got)
	}
}

func TestSetCommonGroupSamplingTime(t *testing.T) {
	a, rb := newTestADC()

	a.SetCommonGroupSamplingTime(Common1, T79_5)
	a.SetCommonGroupSamplingTime(Common2, T1_5)

	if got := rb.SMPR.Get(); got != uint32(T79_5.Bits()) {
		t.Errorf("SMPR = %#x after programming both groups, want %#x", got, T79_5.Bits())
	}

	a.SetCommonGroupSamplingTime(Common2, T160_5)
	want := uint32(T79_5.Bits()) | uint32(T160_5.Bits())<<4
	if got := rb.SMPR.Get(); got != want {
		t.Errorf("SMPR = %#x, want %#x", got, want)
	}
}

func TestSetChannelSamplingTimeGroup(t *testing.T) {
	a, rb := newTestADC()

	a.SetChannelSamplingTimeGroup(C5, Common2)
	if got := rb.SMPR.Get(); got != 1<<(pac.ADC_SMPR_SMPSEL_Pos+5) {
		t.Errorf("SMPR = %#x after assigning C5 to group 2", got)
	}

	a.SetChannelSamplingTimeGroup(C5, Common1)
	if got := rb.SMPR.Get(); got != 0 {
		t.Errorf("SMPR = %#x after assigning C5 back to group 1", got)
	}
}

func TestSelectChannelsReplacesSelection(t *testing.T) {
	a, rb := newTestADC()

	a.SelectChannels(C0, C4, C18)
	want := uint32(1<<0 | 1<<4 | 1<<18)
	if got := rb.CHSELR.Get(); got != want {
		t.Errorf("CHSELR = %#x, want %#x", got, want)
	}

	a.SelectChannels(C7)
	if got := rb.CHSELR.Get(); got != 1<<7 {
		t.Errorf("CHSELR = %#x after reselect, want %#x", got, uint32(1<<7))
	}
}

func TestChannelFromIndex(t *testing.T) {
	cases := []struct {
		idx  int
		want Channel
		ok   bool
	}{
		{0, 0, false},
		{1, C0, true},
		{5, C4, true},
		{19, C18, true},
		{20, 0, false},
	}
	for _, c := range cases {
		got, ok := ChannelFromIndex(c.idx)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("ChannelFromIndex(%d) = %v, %v; want %v, %v", c.idx, got, ok, c.want, c.ok)
		}
	}
}

func TestSamplingTimeCommonGroupEncodings(t *testing.T) {
	if Common1.Bits() != 0 || Common1.Bit() {
		t.Errorf("Common1 encodes to %d, %v; want 0, false", Common1.Bits(), Common1.Bit())
	}
	if Common2.Bits() != 4 || !Common2.Bit() {
		t.Errorf("Common2 encodes to %d, %v; want 4, true", Common2.Bits(), Common2.Bit())
	}
	for _, b := range []uint8{0, 4} {
		if _, ok := SamplingTimeCommonGroupFromBits(b); !ok {
			t.Errorf("SamplingTimeCommonGroupFromBits(%d) did not decode", b)
		}
	}
	for _, b := range []uint8{1, 2, 3, 5, 8} {
		if _, ok := SamplingTimeCommonGroupFromBits(b); ok {
			t.Errorf("SamplingTimeCommonGroupFromBits(%d) decoded", b)
		}
	}
}

func TestFieldCodecRoundTrips(t *testing.T) {
	for m := ClockAsync; m <= ClockSyncPclkDiv1; m++ {
		got, ok := ClockModeFromBits(m.Bits())
		if !ok || got != m {
			t.Errorf("ClockModeFromBits(%d) = %v, %v", m.Bits(), got, ok)
		}
	}
	if _, ok := ClockModeFromBits(4); ok {
		t.Error("ClockModeFromBits(4) decoded")
	}

	for r := Bits12; r <= Bits6; r++ {
		got, ok := ResolutionFromBits(r.Bits())
		if !ok || got != r {
			t.Errorf("ResolutionFromBits(%d) = %v, %v", r.Bits(), got, ok)
		}
	}

	for s := T1_5; s <= T160_5; s++ {
		got, ok := SamplingTimeFromBits(s.Bits())
		if !ok || got != s {
			t.Errorf("SamplingTimeFromBits(%d) = %v, %v", s.Bits(), got, ok)
		}
	}
	if _, ok := SamplingTimeFromBits(8); ok {
		t.Error("SamplingTimeFromBits(8) decoded")
	}

	for m := TriggerDisabled; m <= TriggerBothEdges; m++ {
		got, ok := ExternalTriggerModeFromBits(m.Bits())
		if !ok || got != m {
			t.Errorf("ExternalTriggerModeFromBits(%d) = %v, %v", m.Bits(), got, ok)
		}
	}

	if DataAlignmentFromBit(true) != AlignLeft || DataAlignmentFromBit(false) != AlignRight {
		t.Error("DataAlignmentFromBit mapping wrong")
	}
}

func TestRegularRankEncodings(t *testing.T) {
	for i, r := range []RegularRank{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8} {
		want := uint8(i * 4)
		if r.Bits() != want {
			t.Errorf("%v.Bits() = %d, want %d", r, r.Bits(), want)
		}
		got, ok := RegularRankFromBits(want)
		if !ok || got != r {
			t.Errorf("RegularRankFromBits(%d) = %v, %v", want, got, ok)
		}
	}
	for _, b := range []uint8{1, 2, 3, 30, 32} {
		if _, ok := RegularRankFromBits(b); ok {
			t.Errorf("RegularRankFromBits(%d) decoded", b)
		}
	}
}
