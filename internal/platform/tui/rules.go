package tui

// RulesVersion is the revision of the printed rules.
const RulesVersion = "1.0.1"

// RulesText describes how to play.
const RulesText = `Pocket Dragon

Keep your dragon fed while you race to log enough successes.

  * Press start. The game timer and the feeder timer count down every second.
  * When the feeder timer is at 30 seconds or less you may feed the dragon.
    Feeding sets the feeder timer to the full time minus what was left, so
    feeding late buys you more time.
  * If the feeder timer or the game timer reaches zero, the game is lost.
  * Log a success each time you complete a task. Reach the goal for your
    difficulty before the game timer runs out to win.
  * Clues help you along: a general clue costs 1, a specific clue costs 2.
    You start with 3 clues and gain one every 15 to 20 seconds.
  * Winning scores the base points of the difficulty plus one point for
    every ten seconds left on the game timer.

Difficulty   Successes   Game time   Feeder time   Base points
Easy         3           5:00        2:00          1
Medium       5           6:00        2:00          3
Hard         7           7:00        2:00          8

You can pause at any time. Difficulty and reset are only available while
the game is paused.`
