// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PaymentCondition is the predicate function for paymentcondition builders.
type PaymentCondition func(*sql.Selector)

// PipelineMetric is the predicate function for pipelinemetric builders.
type PipelineMetric func(*sql.Selector)

// ProcessingLog is the predicate function for processinglog builders.
type ProcessingLog func(*sql.Selector)

// Proposal is the predicate function for proposal builders.
type Proposal func(*sql.Selector)

// ProposalItem is the predicate function for proposalitem builders.
type ProposalItem func(*sql.Selector)

// ProposalSolution is the predicate function for proposalsolution builders.
type ProposalSolution func(*sql.Selector)

// RecommendedProduct is the predicate function for recommendedproduct builders.
type RecommendedProduct func(*sql.Selector)
