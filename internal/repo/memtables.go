package repo

import "studioboard/internal/domain"

// Degraded-mode collection constructors. Each seeds from its fixtures on
// first access; none of these are wired up in production.

func MemoryTasks() *Memory[domain.Task] {
	return NewMemory(TaskFixtures(), func(t domain.Task, id string) domain.Task {
		t.ID = id
		return t
	})
}

func MemoryAssets() *Memory[domain.Asset] {
	return NewMemory(AssetFixtures(), func(a domain.Asset, id string) domain.Asset {
		a.ID = id
		return a
	})
}

func MemoryExpenses() *Memory[domain.Expense] {
	return NewMemory(ExpenseFixtures(), func(e domain.Expense, id string) domain.Expense {
		e.ID = id
		return e
	})
}

func MemoryMilestones() *Memory[domain.Milestone] {
	return NewMemory(MilestoneFixtures(), func(m domain.Milestone, id string) domain.Milestone {
		m.ID = id
		return m
	})
}

func MemoryIdeas() *Memory[domain.Idea] {
	return NewMemory(IdeaFixtures(), func(i domain.Idea, id string) domain.Idea {
		i.ID = id
		return i
	})
}

func MemoryCompetitors() *Memory[domain.Competitor] {
	return NewMemory(CompetitorFixtures(), func(c domain.Competitor, id string) domain.Competitor {
		c.ID = id
		return c
	})
}
