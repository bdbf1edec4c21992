// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActiveSession is the predicate function for activesession builders.
type ActiveSession func(*sql.Selector)

// LearnerProfile is the predicate function for learnerprofile builders.
type LearnerProfile func(*sql.Selector)

// PoolQuestion is the predicate function for poolquestion builders.
type PoolQuestion func(*sql.Selector)

// QuestionExposure is the predicate function for questionexposure builders.
type QuestionExposure func(*sql.Selector)
