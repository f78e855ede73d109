package handhistory

// Heads-up: the hero raises from the button and the big blind folds.
const handFoldPreflop = `PokerStars Hand #105026771696: Tournament #797535243, $3.19+$0.31 USD Hold'em No Limit - Level I (10/20) - 2013/10/04 17:22:20 CET [2013/10/04 11:22:20 ET]
Table '797535243 1' 2-max Seat #1 is the button
Seat 1: Alice (1500 in chips)
Seat 2: Bob (1500 in chips)
Alice: posts small blind 10
Bob: posts big blind 20
*** HOLE CARDS ***
Dealt to Alice [Qs Qh]
Alice: raises 40 to 60
Bob: folds
Uncalled bet (40) returned to Alice
Alice collected 40 from pot
Alice: doesn't show hand
*** SUMMARY ***
Total pot 40 | Rake 0
Seat 1: Alice (button) (small blind) collected (40)
Seat 2: Bob (big blind) folded before Flop
`

// Two players show down the same hand and split the pot.
const handSplitShowdown = `PokerStars Hand #105024000105: Tournament #797469411, $3.19+$0.31 USD Hold'em No Limit - Level II (15/30) - 2013/10/04 13:53:27 CET [2013/10/04 7:53:27 ET]
Table '797469411 15' 6-max Seat #3 is the button
Seat 1: flettl2 (1500 in chips)
Seat 2: santy312 (1470 in chips)
Seat 3: W2lkm2n (1530 in chips)
Seat 5: MISTRPerfect (1500 in chips)
Seat 6: blak_douglas (1500 in chips)
MISTRPerfect: posts small blind 15
blak_douglas: posts big blind 30
*** HOLE CARDS ***
Dealt to W2lkm2n [Ac Jh]
flettl2: folds
santy312: calls 30
W2lkm2n: calls 30
MISTRPerfect: folds
blak_douglas: checks
*** FLOP *** [2s 6d Ah]
blak_douglas: checks
santy312: bets 60
W2lkm2n: calls 60
blak_douglas: folds
*** TURN *** [2s 6d Ah] [Kc]
santy312: checks
W2lkm2n: checks
*** RIVER *** [2s 6d Ah Kc] [7d]
santy312: bets 100
W2lkm2n: calls 100
*** SHOW DOWN ***
santy312: shows [Ad Jc] (a pair of Aces)
W2lkm2n: shows [Ac Jh] (a pair of Aces)
santy312 collected 212 from pot
W2lkm2n collected 213 from pot
*** SUMMARY ***
Total pot 425 | Rake 0
Board [2s 6d Ah Kc 7d]
Seat 1: flettl2 folded before Flop (didn't bet)
Seat 2: santy312 showed [Ad Jc] and won (212) with a pair of Aces
Seat 3: W2lkm2n (button) showed [Ac Jh] and won (213) with a pair of Aces
Seat 5: MISTRPerfect (small blind) folded before Flop
Seat 6: blak_douglas (big blind) folded on the Flop
`

// Antes, a sitting-out seat, and an uncalled bet on the flop.
const handUncalledFlop = `PokerStars Hand #105025168298: Tournament #797469411, $10.00+$1.00 USD Hold'em No Limit - Level IV (50/100) - 2013/10/04 14:19:17 CET [2013/10/04 8:19:17 ET]
Table '797469411 11' 9-max Seat #2 is the button
Seat 1: lubanyaa (2700 in chips)
Seat 2: W2lkm2n (3060 in chips)
Seat 3: flettl2 (1500 in chips) is sitting out
Seat 4: s0rrow (2355 in chips)
Seat 6: Newfie_187 (1500 in chips)
lubanyaa: posts the ante 10
W2lkm2n: posts the ante 10
flettl2: posts the ante 10
s0rrow: posts the ante 10
Newfie_187: posts the ante 10
flettl2: posts small blind 50
s0rrow: posts big blind 100
*** HOLE CARDS ***
Dealt to W2lkm2n [Ah 9c]
Newfie_187: folds
lubanyaa: calls 100
W2lkm2n: raises 200 to 300
flettl2: folds
s0rrow: calls 200
lubanyaa: folds
*** FLOP *** [Td 4s 3h]
s0rrow: checks
W2lkm2n: bets 400
s0rrow: folds
Uncalled bet (400) returned to W2lkm2n
W2lkm2n collected 800 from pot
W2lkm2n: doesn't show hand
*** SUMMARY ***
Total pot 800 | Rake 0
Board [Td 4s 3h]
Seat 1: lubanyaa folded before Flop
Seat 2: W2lkm2n (button) collected (800)
Seat 3: flettl2 (small blind) folded before Flop
Seat 4: s0rrow (big blind) folded on the Flop
Seat 6: Newfie_187 folded before Flop (didn't bet)
`

// Ends on the turn with an all-in bet nobody calls. EUR buy-in.
const handTurnAllIn = `PokerStars Hand #105034215446: Tournament #797536898, $0.91+$0.09 EUR Hold'em No Limit - Level III (25/50) - 2013/10/04 18:48:33 CET [2013/10/04 12:48:33 ET]
Table '797536898 3' 3-max Seat #1 is the button
Seat 1: Kabuki_13 (780 in chips)
Seat 2: Hero42 (1170 in chips)
Seat 3: m.huber (1050 in chips)
Hero42: posts small blind 25
m.huber: posts big blind 50
*** HOLE CARDS ***
Dealt to Hero42 [8h 8s]
Kabuki_13: calls 50
Hero42: calls 25
m.huber: checks
*** FLOP *** [Ks 8d 4c]
Hero42: checks
m.huber: bets 100
Kabuki_13: folds
Hero42: raises 200 to 300
m.huber: calls 200
*** TURN *** [Ks 8d 4c] [2h]
Hero42: bets 820 and is all-in
m.huber: folds
Uncalled bet (820) returned to Hero42
Hero42 collected 750 from pot
Hero42: doesn't show hand
*** SUMMARY ***
Total pot 750 | Rake 0
Board [Ks 8d 4c 2h]
Seat 1: Kabuki_13 (button) folded on the Flop
Seat 2: Hero42 (small blind) collected (750)
Seat 3: m.huber (big blind) folded on the Turn
`

// Heads-up all-in that ends the tournament.
const handKnockout = `PokerStars Hand #105026779010: Tournament #797535243, $3.19+$0.31 USD Hold'em No Limit - Level I (10/20) - 2013/10/04 17:40:02 CET [2013/10/04 11:40:02 ET]
Table '797535243 1' 2-max Seat #1 is the button
Seat 1: Alice (1500 in chips)
Seat 2: Bob (500 in chips)
Alice: posts small blind 10
Bob: posts big blind 20
*** HOLE CARDS ***
Dealt to Alice [Ah Ad]
Alice: raises 1480 to 1500 and is all-in
Bob: calls 480 and is all-in
Uncalled bet (1000) returned to Alice
*** FLOP *** [2c 7d 9s]
*** TURN *** [2c 7d 9s] [Js]
*** RIVER *** [2c 7d 9s Js] [3h]
*** SHOW DOWN ***
Alice: shows [Ah Ad] (a pair of Aces)
Bob: shows [Kc Kd] (a pair of Kings)
Alice collected 1000 from pot
Bob finished the tournament in 2nd place
Alice wins the tournament and receives $6.38 - congratulations!
*** SUMMARY ***
Total pot 1000 | Rake 0
Board [2c 7d 9s Js 3h]
Seat 1: Alice (button) (small blind) showed [Ah Ad] and won (1000) with a pair of Aces
Seat 2: Bob (big blind) showed [Kc Kd] and lost with a pair of Kings
`

var allHands = map[string]string{
	"knockout":       handKnockout,
	"fold preflop":   handFoldPreflop,
	"split showdown": handSplitShowdown,
	"uncalled flop":  handUncalledFlop,
	"turn all-in":    handTurnAllIn,
}
