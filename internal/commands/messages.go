package commands

import (
	"bytes"
	"log/slog"
	"text/template"
)

// Message template names. Every user-facing line the engine emits is rendered
// from one of these.
const (
	MsgUnknownCommand  = "unknown_command"
	MsgCommandTooLong  = "command_too_long"
	MsgInternalFailure = "internal_failure"
	MsgInCombat        = "in_combat"
	MsgNotInCombat     = "not_in_combat"
	MsgCombatResume    = "combat_resume"
	MsgHelp            = "help"

	MsgRoom        = "room"
	MsgCannotMove  = "cannot_move"
	MsgMoveUsage   = "move_usage"
	MsgMoved       = "moved"
	MsgLostInVoid  = "lost_in_void"
	MsgCombatReset = "combat_reset"
	MsgSayUsage    = "say_usage"
	MsgSay         = "say"

	MsgNothingToHunt = "nothing_to_hunt"
	MsgFoundMonster  = "found_monster"
	MsgEngages       = "engages"
	MsgFleeSuccess   = "flee_success"
	MsgFleeFailed    = "flee_failed"
	MsgFatalDamage   = "fatal_damage"
	MsgExpGained     = "exp_gained"
	MsgLootDropped   = "loot_dropped"
	MsgBattleHarden  = "battle_hardened"

	MsgInventory        = "inventory"
	MsgNothingToUse     = "nothing_to_use"
	MsgUseUsage         = "use_usage"
	MsgItemNotFound     = "item_not_found"
	MsgItemUsed         = "item_used"
	MsgCannotUse        = "cannot_use"
	MsgEquipUnready     = "equip_unimplemented"
	MsgNoShop           = "no_shop"
	MsgShopListing      = "shop_listing"
	MsgItemNotSold      = "item_not_sold"
	MsgCannotAfford     = "cannot_afford"
	MsgItemPurchased    = "item_purchased"
	MsgCheatShards      = "cheat_shards"
	MsgCheatExp         = "cheat_exp"
	MsgCheatExpUsage    = "cheat_exp_usage"
	MsgCheatItem        = "cheat_item"
	MsgCheatItemUsage   = "cheat_item_usage"
	MsgCheatItemUnknown = "cheat_item_unknown"

	MsgSkillsOnlyInCombat = "skills_only_in_combat"
	MsgSkillUsage         = "skill_usage"
	MsgSkillUnknown       = "skill_unknown"
	MsgSkillNotLearned    = "skill_not_learned"
	MsgSkillLevel         = "skill_level"
	MsgSkillRace          = "skill_race"
	MsgSkillForm          = "skill_form"
	MsgSkillCooldown      = "skill_cooldown"
	MsgInsufficientFlux   = "insufficient_flux"
	MsgSkillReady         = "skill_ready"
	MsgFluxUsed           = "flux_used"
	MsgFluxRegen          = "flux_regen"
	MsgSkillsTable        = "skills_table"
	MsgSkillInfoUsage     = "skillinfo_usage"
	MsgSkillInfo          = "skillinfo"
	MsgPassive            = "passive"
	MsgNoPassive          = "no_passive"

	MsgAvailableForms  = "available_forms"
	MsgNoForms         = "no_forms"
	MsgCannotTransform = "cannot_transform"
	MsgTransformed     = "transformed"
	MsgPowerMultiplied = "power_multiplied"
	MsgReverted        = "reverted"
	MsgAlreadyBase     = "already_base"

	MsgNoActiveQuests = "no_active_quests"
	MsgQuestList      = "quest_list"
	MsgQuestStarted   = "quest_started"
	MsgQuestCompleted = "quest_completed"
	MsgQuestUpdate    = "quest_update"
	MsgNoOneToTalk    = "no_one_to_talk"
	MsgNPCSays        = "npc_says"

	MsgMissingShards    = "missing_shards"
	MsgShardsResonate   = "shards_resonate"
	MsgArchonSummoned   = "archon_summoned"
	MsgArchonAwakened   = "archon_awakened"
	MsgArchonDone       = "archon_done"
	MsgLevelsGained     = "levels_gained"
	MsgLevelUp          = "level_up"
	MsgLevelUpAll       = "level_up_broadcast"
	MsgSkillsLearned    = "skills_learned"
	MsgSkillsLearnedAll = "skills_learned_broadcast"
)

const messageTemplates = `
{{- define "unknown_command" }}Unknown command.{{ end }}
{{- define "command_too_long" }}Command too long. Maximum length is {{ .Max }} characters.{{ end }}
{{- define "internal_failure" }}Something went wrong. Please try again.{{ end }}
{{- define "in_combat" }}You are in combat! Valid commands: attack, flee, use, skill{{ end }}
{{- define "not_in_combat" }}You are not in combat.{{ end }}
{{- define "combat_resume" }}You are still fighting {{ .Monster }} ({{ .HP }}/{{ .MaxHP }} HP)! Valid commands: attack, flee, use, skill{{ end }}
{{- define "help" }}Commands: {{ join ", " .Verbs }}{{ end }}

{{- define "room" }}{{ .Name }}
{{ .Description }}
{{- with .NPC }}
{{ . }} is here.{{ end }}
{{- with .Shop }}
There is a shop here: {{ . }}.{{ end }}
{{- with .Monsters }}
You sense: {{ join ", " . }}{{ end }}
Exits: {{ join ", " .Exits | default "none" }}{{ end }}
{{- define "cannot_move" }}You cannot go that way.{{ end }}
{{- define "move_usage" }}Move where?{{ end }}
{{- define "moved" }}You move {{ .Direction }}...{{ end }}
{{- define "lost_in_void" }}You were lost in the void and returned to reality.{{ end }}
{{- define "combat_reset" }}Your opponent has vanished. The fight is over.{{ end }}
{{- define "say_usage" }}Say what?{{ end }}
{{- define "say" }}{{ .Text }}{{ end }}

{{- define "nothing_to_hunt" }}There is nothing to hunt here.{{ end }}
{{- define "found_monster" }}You found a {{ .Monster }}! Combat started!{{ end }}
{{- define "engages" }}{{ .Monster }} engages you!{{ end }}
{{- define "flee_success" }}You fled successfully!{{ end }}
{{- define "flee_failed" }}Failed to flee!{{ end }}
{{- define "fatal_damage" }}You took fatal damage! Reviving at start with {{ .HP }} HP.{{ end }}
{{- define "exp_gained" }}You gained {{ .Exp }} EXP.{{ end }}
{{- define "loot_dropped" }}Loot dropped: {{ join ", " .Items }}{{ end }}
{{- define "battle_hardened" }}[Battle Hardened] STR bonus: +{{ .Bonus }}%!{{ end }}

{{- define "inventory" }}Credits: {{ .Currency }}
{{- if .Items }}
Inventory:
{{- range .Items }}
- {{ .Name }} x{{ .Qty }}
{{- end }}
{{- else }}
Inventory is empty.
{{- end }}{{ end }}
{{- define "nothing_to_use" }}You have nothing to use.{{ end }}
{{- define "use_usage" }}Use what?{{ end }}
{{- define "item_not_found" }}You don't have that item.{{ end }}
{{- define "item_used" }}You used {{ .Item }}{{ with .Gains }} and recovered {{ join " and " . }}{{ end }}.{{ end }}
{{- define "cannot_use" }}You cannot use that.{{ end }}
{{- define "equip_unimplemented" }}You cannot equip items yet (Coming Soon).{{ end }}
{{- define "no_shop" }}There is no shop here.{{ end }}
{{- define "shop_listing" }}{{ .Shop }} (Credits: {{ .Currency }})
{{- range .Items }}
{{ printf "%-24s %6d  %s" .Name .Price .Description }}
{{- else }}
This shop is empty.
{{- end }}
Type 'buy <item name>' to purchase.{{ end }}
{{- define "item_not_sold" }}That item is not sold here.{{ end }}
{{- define "cannot_afford" }}You cannot afford that.{{ end }}
{{- define "item_purchased" }}You bought {{ .Item }} for {{ .Price }} Credits.{{ end }}
{{- define "cheat_shards" }}Cheater! You have the Shards.{{ end }}
{{- define "cheat_exp" }}Cheater! Gained {{ .Exp }} EXP.{{ end }}
{{- define "cheat_exp_usage" }}Usage: cheat_exp <amount>{{ end }}
{{- define "cheat_item" }}Cheater! Obtained {{ .Item }}.{{ end }}
{{- define "cheat_item_usage" }}Usage: cheat_item <item_id>{{ end }}
{{- define "cheat_item_unknown" }}Invalid Item ID.{{ end }}

{{- define "skills_only_in_combat" }}You can only use skills in combat!{{ end }}
{{- define "skill_usage" }}Usage: skill <skill_name>{{ end }}
{{- define "skill_unknown" }}Unknown skill '{{ .Skill }}'.{{ end }}
{{- define "skill_not_learned" }}You haven't learned {{ .Skill }} yet.{{ end }}
{{- define "skill_level" }}{{ .Skill }} requires level {{ .Level }}.{{ end }}
{{- define "skill_race" }}{{ .Skill }} can only be used by the {{ .Race }}.{{ end }}
{{- define "skill_form" }}{{ .Skill }} requires the {{ .Form }} form.{{ end }}
{{- define "skill_cooldown" }}{{ .Skill }} is on cooldown! {{ .Remaining }} rounds remaining.{{ end }}
{{- define "insufficient_flux" }}Not enough Flux! Need {{ .Required }}, have {{ .Current }}.{{ end }}
{{- define "skill_ready" }}{{ .Skill }} is ready!{{ end }}
{{- define "flux_used" }}Used {{ .Cost }} Flux ({{ .Current }}/{{ .Max }} remaining){{ end }}
{{- define "flux_regen" }}Regenerated {{ .Regen }} Flux ({{ .Current }}/{{ .Max }}){{ end }}
{{- define "skills_table" }}Skill Progression [{{ .Race }}]
{{- range .Rows }}
{{ printf "%-22s %-8s %5s  %s" .Name .Status .Flux .Description }}
{{- else }}
No skills found.
{{- end }}
Type 'skillinfo <name>' for details.{{ end }}
{{- define "skillinfo_usage" }}Usage: skillinfo <skill_name>{{ end }}
{{- define "skillinfo" }}{{ upper .Name }} [{{ .Status }}]
"{{ .Description }}"
Requirements: Level {{ .Level }}{{ with .Race }}, Race {{ . }}{{ end }}{{ with .Form }}, Form {{ . }}{{ end }}
Cost: {{ .FluxCost }} Flux{{ if .HPCost }}, {{ .HPCost }}% HP{{ end }}
{{- if .Cooldown }}
Cooldown: {{ .Cooldown }} Rounds {{ if .Remaining }}({{ .Remaining }} left){{ else }}(Ready){{ end }}
{{- end }}
Effects:
{{- range .Effects }}
- {{ . }}
{{- else }}
- No direct special effects.
{{- end }}{{ end }}
{{- define "passive" }}Race Passive: {{ .Name }}
{{ .Description }}{{ end }}
{{- define "no_passive" }}Your race has no passive ability.{{ end }}

{{- define "available_forms" }}Available forms: {{ join ", " .Forms }}{{ end }}
{{- define "no_forms" }}You have not unlocked any transformations.{{ end }}
{{- define "cannot_transform" }}You cannot transform into that.{{ end }}
{{- define "transformed" }}You scream in power and transform into {{ .Form }}!{{ end }}
{{- define "power_multiplied" }}Your power has multiplied!{{ end }}
{{- define "reverted" }}You return to your Base form.{{ end }}
{{- define "already_base" }}You are already in your Base form.{{ end }}

{{- define "no_active_quests" }}No active quests.{{ end }}
{{- define "quest_list" }}Active Quests:
{{- range .Quests }}
- {{ .Title }}: {{ .Progress }}/{{ .Count }} ({{ .Description }})
{{- end }}{{ end }}
{{- define "quest_started" }}Quest Started! Check 'quests' for details.{{ end }}
{{- define "quest_completed" }}Quest Completed! Received: {{ join ", " .Rewards | default "nothing" }}{{ end }}
{{- define "quest_update" }}Quest Update: {{ .Title }} ({{ .Progress }}/{{ .Count }}){{ end }}
{{- define "no_one_to_talk" }}There is no one here to talk to.{{ end }}
{{- define "npc_says" }}{{ .NPC }}: {{ .Text }}{{ end }}

{{- define "missing_shards" }}You do not have all 7 Cosmic Shards.{{ end }}
{{- define "shards_resonate" }}The shards resonate... a rift opens in reality...{{ end }}
{{- define "archon_summoned" }}THE ARCHON has been summoned by a powerful traveler!{{ end }}
{{- define "archon_awakened" }}ARCHON: 'YOU HAVE AWAKENED ME. STATE YOUR DESIRE.'{{ end }}
{{- define "archon_done" }}ARCHON: 'IT IS DONE.' (The shards dissipate into the void).{{ end }}
{{- define "levels_gained" }}You have gained {{ .Levels }} levels! (Level {{ .Old }} -> {{ .New }}){{ end }}
{{- define "level_up" }}LEVEL UP! You are now level {{ .Level }}!{{ end }}
{{- define "level_up_broadcast" }}{{ .Name }} has reached Level {{ .Level }}!{{ end }}
{{- define "skills_learned" }}Learned new skills: {{ join ", " .Skills }}{{ end }}
{{- define "skills_learned_broadcast" }}{{ .Name }} learned {{ join ", " .Skills }}!{{ end }}
`

var messages = template.Must(template.New("messages").Funcs(templateFuncs).Parse(messageTemplates))

// Render executes the named message template. A template failure is logged
// and the template name is returned so the player still sees something.
func Render(name string, data any) string {
	var buf bytes.Buffer
	if err := messages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering message", "template", name, "error", err)
		return name
	}
	return buf.String()
}
