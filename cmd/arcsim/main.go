// Command arcsim runs a small console simulation: a player, a boss, a
// patrolling demon, and a shop NPC driven by the movement, health, and AI
// systems for five simulated seconds.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arriety/arc"
	"github.com/arriety/arc/component"
	"github.com/arriety/arc/system"
)

const (
	step   = arc.DefaultStep
	frames = 300 // 5 seconds at 60 updates per second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "arcsim:", err)
		os.Exit(1)
	}
}

func run() error {
	world := arc.NewWorld(
		arc.WithExpectedEntityCount(1000),
		arc.WithExpectedComponentCount(5000),
	)
	defer world.Dispose()

	for _, sys := range []arc.System{
		system.NewMovementSystem(),
		system.NewHealthSystem(),
		system.NewAISystem(),
	} {
		if err := world.AddSystem(sys); err != nil {
			return err
		}
	}
	world.Initialize()

	player := createPlayer(world, 100, 300)
	boss := createBoss(world, 1000, 150, 200)
	demon := createDemon(world, 50, 80, 50, 100)
	npc := createShopNPC(world, "Urokodaki", 200, 50)

	fmt.Println("=== arcsim ===")
	fmt.Println(world)
	fmt.Println()

	printEntity("Player", player)
	printEntity("Boss", boss)
	printEntity("Demon", demon)
	printEntity("NPC", npc)

	fmt.Println("=== simulating ===")
	runner := arc.NewRunner(world, step)
	for frame := 0; frame < frames; frame++ {
		if frame%60 == 0 {
			printSecond(frame/60, player, boss, frame)
		}
		if err := runner.Run(context.Background(), 1); err != nil {
			return err
		}
	}

	fmt.Println("\nsimulation complete")
	return nil
}

func printSecond(second int, player, boss arc.Entity, frame int) {
	fmt.Printf("--- second %d ---\n", second)

	if tr, ok := arc.Get[component.Transform](player); ok {
		h, _ := arc.Get[component.Health](player)
		fmt.Printf("player: pos(%.1f, %.1f) health(%.1f/%.1f)\n",
			tr.X, tr.Y, h.Current(), h.Max())
	}
	if ai, ok := arc.Get[component.AILogic](boss); ok {
		h, _ := arc.Get[component.Health](boss)
		fmt.Printf("boss: state(%s) health(%.1f/%.1f)\n",
			ai.State(), h.Current(), h.Max())
	}
	if skills, ok := arc.Get[component.Skills](player); ok {
		now := float64(frame) * step
		if skills.Use("water_breathing", now) {
			fmt.Println("player used Water Breathing!")
		}
	}
}

func createPlayer(world *arc.World, health, speed float64) arc.Entity {
	player := world.CreateEntity()
	player.AddComponent(component.NewTransform(50, 50))
	player.AddComponent(component.NewHealth(health))
	player.AddComponent(component.NewMovement(speed, 0.9))

	skills := component.NewSkills()
	skills.Add(component.NewSkill("water_breathing", "Water Breathing: First Form", 3, 20, 1))
	skills.Add(component.NewSkill("dance_of_fire_god", "Dance of the Fire God", 8, 40, 5))
	player.AddComponent(skills)
	return player
}

func createBoss(world *arc.World, health, x, y float64) arc.Entity {
	boss := world.CreateEntity()
	boss.AddComponent(component.NewTransform(x, y))
	boss.AddComponent(component.NewHealth(health))
	boss.AddComponent(component.NewMovement(120, 0.7))

	ai := component.NewAILogic(component.BehaviorBoss)
	ai.DetectionRange = 200
	ai.AttackRange = 80
	ai.ChaseRange = 300
	boss.AddComponent(ai)

	skills := component.NewSkills()
	skills.Add(component.NewSkill("demon_art", "Blood Demon Art", 5, 0, 10))
	skills.Add(component.NewSkill("regeneration", "Rapid Regeneration", 15, 0, 8))
	boss.AddComponent(skills)
	return boss
}

func createDemon(world *arc.World, health, speed, x, y float64) arc.Entity {
	demon := world.CreateEntity()
	demon.AddComponent(component.NewTransform(x, y))
	demon.AddComponent(component.NewHealth(health))
	demon.AddComponent(component.NewMovement(speed, 0.8))

	ai := component.NewAILogic(component.BehaviorAggressive)
	ai.DetectionRange = 100
	ai.AttackRange = 30
	ai.ChaseRange = 150
	ai.SetPatrolPoints(
		[2]float64{x - 50, y},
		[2]float64{x + 50, y},
		[2]float64{x, y - 30},
		[2]float64{x, y + 30},
	)
	demon.AddComponent(ai)
	return demon
}

func createShopNPC(world *arc.World, name string, x, y float64) arc.Entity {
	npc := world.CreateEntity()
	npc.AddComponent(component.NewTransform(x, y))
	npc.AddComponent(component.NewHealth(100))

	dialog := component.NewSelectButton(name)
	dialog.DialogText = "Welcome, young demon slayer! What can I do for you?"
	dialog.AddButton("shop", "Open Shop", component.ActionOpenShop)
	dialog.AddButton("upgrade", "Upgrade Equipment", component.ActionUpgradeEquipment)
	dialog.AddButton("quest", "View Quests", component.ActionStartQuest)
	dialog.AddButton("gift", "Enter Gift Code", component.ActionEnterGiftCode)
	npc.AddComponent(dialog)
	return npc
}

func printEntity(kind string, e arc.Entity) {
	fmt.Printf("=== %s (%v) ===\n", kind, e)
	for _, c := range e.Components() {
		fmt.Printf("  %v\n", c)
	}
	fmt.Println()
}
