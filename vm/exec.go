package vm

// Step decodes and executes exactly one instruction, per spec section 4.3.
// It never loops internally and never blocks: a starved Input instruction
// rewinds the instruction pointer back to the start of the instruction and
// returns StepSuspended, leaving the machine in WaitingForInput so the next
// Step call (after more input arrives) retries the same instruction from
// scratch.
func (v *VM) Step() StepResult {
	switch v.state {
	case Halted:
		return StepResult{Kind: StepHalted}
	case Errored:
		return StepResult{Kind: StepError, Err: ErrStoppedAfterError}
	}

	startIP := v.ip
	raw := v.mem.Get(v.ip)
	instr, err := Decode(raw)
	if err != nil {
		return v.fail(err)
	}

	switch instr.Op {
	case OpHalt:
		v.state = Halted
		return StepResult{Kind: StepHalted}

	case OpAdd:
		a, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		b, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		if err := v.writeParam(instr, 2, a+b); err != nil {
			return v.fail(err)
		}
		v.ip += 4
		return StepResult{Kind: StepContinue}

	case OpMul:
		a, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		b, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		if err := v.writeParam(instr, 2, a*b); err != nil {
			return v.fail(err)
		}
		v.ip += 4
		return StepResult{Kind: StepContinue}

	case OpInput:
		if len(v.input) == 0 {
			v.ip = startIP
			v.state = WaitingForInput
			return StepResult{Kind: StepSuspended}
		}
		val := v.input[0]
		v.input = v.input[1:]
		if err := v.writeParam(instr, 0, val); err != nil {
			return v.fail(err)
		}
		v.state = Running
		v.ip += 2
		return StepResult{Kind: StepContinue}

	case OpOutput:
		val, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		v.output = append(v.output, val)
		v.ip += 2
		return StepResult{Kind: StepOutput, Value: val}

	case OpJumpIfTrue:
		cond, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		target, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		if cond != 0 {
			if target < 0 {
				return v.fail(&NegativePointerError{Value: target})
			}
			v.ip = target
		} else {
			v.ip += 3
		}
		return StepResult{Kind: StepContinue}

	case OpJumpIfFalse:
		cond, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		target, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		if cond == 0 {
			if target < 0 {
				return v.fail(&NegativePointerError{Value: target})
			}
			v.ip = target
		} else {
			v.ip += 3
		}
		return StepResult{Kind: StepContinue}

	case OpLessThan:
		a, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		b, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		result := int64(0)
		if a < b {
			result = 1
		}
		if err := v.writeParam(instr, 2, result); err != nil {
			return v.fail(err)
		}
		v.ip += 4
		return StepResult{Kind: StepContinue}

	case OpEquals:
		a, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		b, err := v.readParam(instr, 1)
		if err != nil {
			return v.fail(err)
		}
		result := int64(0)
		if a == b {
			result = 1
		}
		if err := v.writeParam(instr, 2, result); err != nil {
			return v.fail(err)
		}
		v.ip += 4
		return StepResult{Kind: StepContinue}

	case OpAdjustBase:
		delta, err := v.readParam(instr, 0)
		if err != nil {
			return v.fail(err)
		}
		v.relBase += delta
		v.ip += 2
		return StepResult{Kind: StepContinue}

	default:
		return v.fail(&IllegalOperationError{Code: int64(instr.Op)})
	}
}

func (v *VM) fail(err error) StepResult {
	v.state = Errored
	v.err = err
	return StepResult{Kind: StepError, Err: err}
}

// readParam resolves the slot-th parameter (0-indexed) of instr, which
// begins at v.ip+1, to its effective value per its parameter mode.
func (v *VM) readParam(instr Instruction, slot int) (int64, error) {
	raw := v.mem.Get(v.ip + 1 + int64(slot))
	switch instr.Modes[slot] {
	case Immediate:
		return raw, nil
	case Position:
		if raw < 0 {
			return 0, &NegativePointerError{Value: raw}
		}
		return v.mem.Get(raw), nil
	case Relative:
		addr := v.relBase + raw
		if addr < 0 {
			return 0, &NegativePointerError{Value: addr}
		}
		return v.mem.Get(addr), nil
	default:
		return 0, &IllegalParamModeError{Mode: int64(instr.Modes[slot])}
	}
}

// writeParam resolves the slot-th parameter to a write address and stores
// value there. Immediate mode is illegal for a write parameter.
func (v *VM) writeParam(instr Instruction, slot int, value int64) error {
	raw := v.mem.Get(v.ip + 1 + int64(slot))
	switch instr.Modes[slot] {
	case Position:
		if raw < 0 {
			return &NegativePointerError{Value: raw}
		}
		v.mem.Set(raw, value)
		return nil
	case Relative:
		addr := v.relBase + raw
		if addr < 0 {
			return &NegativePointerError{Value: addr}
		}
		v.mem.Set(addr, value)
		return nil
	case Immediate:
		return &IllegalParamModeError{Mode: int64(Immediate), Detail: "immediate mode is not valid for a write parameter"}
	default:
		return &IllegalParamModeError{Mode: int64(instr.Modes[slot])}
	}
}
