package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/anuk909/Kakuro-Solver/kakuro"
)

// Prover compiles board layouts into proving circuits and generates
// Groth16 proofs over BN254.
type Prover struct {
	curve ecc.ID
}

// New creates a prover on the BN254 curve.
func New() *Prover {
	return &Prover{curve: ecc.BN254}
}

// CompiledBoard holds the compiled constraint system and keys for one board
// layout. Setup is the expensive step; a compiled board can prove any number
// of solutions for the same layout.
type CompiledBoard struct {
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int

	curve  ecc.ID
	layout *layout
}

// Compile builds the circuit for a board layout and runs trusted setup.
func (p *Prover) Compile(board *kakuro.Board) (*CompiledBoard, error) {
	l, err := layoutFor(board)
	if err != nil {
		return nil, err
	}

	cs, err := frontend.Compile(p.curve.ScalarField(), r1cs.NewBuilder, l.template())
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	return &CompiledBoard{
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
		curve:        p.curve,
		layout:       l,
	}, nil
}

// Prove generates a proof that the solution satisfies the board's runs.
// The digits stay secret; the verifier learns only the targets and the
// packed commitment.
func (cb *CompiledBoard) Prove(solution kakuro.Solution) (groth16.Proof, error) {
	assignment, err := cb.layout.assignment(solution)
	if err != nil {
		return nil, err
	}

	w, err := frontend.NewWitness(assignment, cb.curve.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness creation failed: %w", err)
	}

	proof, err := groth16.Prove(cb.CS, cb.ProvingKey, w)
	if err != nil {
		return nil, fmt.Errorf("proof generation failed: %w", err)
	}
	return proof, nil
}

// Verify checks a proof against the public inputs derived from the
// solution (its targets and commitment). In a real exchange the verifier
// would receive the commitment out of band rather than recompute it.
func (cb *CompiledBoard) Verify(proof groth16.Proof, solution kakuro.Solution) error {
	assignment, err := cb.layout.assignment(solution)
	if err != nil {
		return err
	}

	w, err := frontend.NewWitness(assignment, cb.curve.ScalarField())
	if err != nil {
		return fmt.Errorf("witness creation failed: %w", err)
	}
	public, err := w.Public()
	if err != nil {
		return fmt.Errorf("public witness extraction failed: %w", err)
	}

	return groth16.Verify(proof, cb.VerifyingKey, public)
}
