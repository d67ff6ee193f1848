// Package models defines the Falcon domain records and their input types.
//
// The package contains three categories of types:
//
// 1. Entities: plain records owned by the domain store and persisted as JSON
//   - [Task] : A dated to-do with a priority and an optional category
//   - [Goal] : A cadence-based objective (daily, monthly, yearly) with 0-100 progress
//   - [Category] : A named color used to group tasks and goals
//   - [Theme] : A named [Palette] of presentation colors
//
// 2. Inputs: entity fields minus the store-assigned id and creation time
//   - [NewTask], [NewGoal], [NewCategory], [NewTheme]
//
// 3. Patches: partial updates where a nil field means "not supplied"
//   - [TaskPatch], [GoalPatch], [CategoryPatch], [ThemePatch]
//
// Category references from tasks and goals are weak: an empty CategoryID means none,
// and deleting a category clears references instead of deleting the referrers.
//
// Inputs and patches expose Validate, a caller-side guard built on go-playground/validator.
// The store trusts its callers and does not call it.
package models
